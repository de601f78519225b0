package tenant

import (
	"errors"
	"sync"
)

// Database is the unified read/write facade combining the identity store and
// the active workspace store. Accessors resolve against the manager on every
// call, so a tag switch is immediately visible to the next operation while
// an operation already holding a *WorkspaceData keeps its detached copy.
type Database struct {
	manager *Manager
}

// Auth returns the mutable identity store document.
func (d *Database) Auth() *AuthData {
	return d.manager.AuthStore().Data()
}

// Workspace returns the mutable document of the active workspace.
func (d *Database) Workspace() *WorkspaceData {
	return d.manager.WorkspaceStore().Data()
}

func (d *Database) CurrentTag() string {
	return d.manager.CurrentTag()
}

// Write persists both stores concurrently and reports every failure.
func (d *Database) Write() error {
	authStore := d.manager.AuthStore()
	workStore := d.manager.WorkspaceStore()

	var wg sync.WaitGroup
	var authErr, workErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		authErr = authStore.Write()
	}()
	go func() {
		defer wg.Done()
		workErr = workStore.Write()
	}()
	wg.Wait()

	return errors.Join(authErr, workErr)
}

// WriteAuth persists only the identity store; used by session bookkeeping
// which never touches workspace data.
func (d *Database) WriteAuth() error {
	return d.manager.AuthStore().Write()
}

// WriteWorkspace persists only the active workspace store.
func (d *Database) WriteWorkspace() error {
	return d.manager.WorkspaceStore().Write()
}
