// Package tenant owns exactly two datastore instances at a time: the
// permanent identity store and the workspace store selected by the current
// tag. Switching tags swaps the workspace store wholesale while the identity
// store, and therefore every active session, stays untouched.
package tenant

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/datastore"
)

const (
	// reservedStem is the identity store's filename stem; no workspace tag
	// may claim it.
	reservedStem = "auth"

	authFileName = "auth.json"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Manager is always constructed explicitly and injected; tests run isolated
// managers in parallel over their own data directories.
type Manager struct {
	dataDir string
	logger  *slog.Logger

	// mu protects the tag/workspace swap, not workspace contents.
	mu        sync.RWMutex
	tag       string
	authStore *datastore.Store[AuthData]
	workStore *datastore.Store[WorkspaceData]
}

func New(dataDir, defaultTag string, logger *slog.Logger) (*Manager, error) {
	if defaultTag == "" {
		defaultTag = "default"
	}
	if err := ValidateTag(defaultTag); err != nil {
		return nil, err
	}

	authStore, err := datastore.Open(filepath.Join(dataDir, authFileName), NewAuthData)
	if err != nil {
		return nil, fmt.Errorf("tenant: open identity store: %w", err)
	}

	workStore, err := datastore.Open(workspacePath(dataDir, defaultTag), NewWorkspaceData)
	if err != nil {
		return nil, fmt.Errorf("tenant: open workspace %q: %w", defaultTag, err)
	}

	logger.Info("tenant manager initialized", "data_dir", dataDir, "tag", defaultTag)

	return &Manager{
		dataDir:   dataDir,
		logger:    logger,
		tag:       defaultTag,
		authStore: authStore,
		workStore: workStore,
	}, nil
}

func workspacePath(dataDir, tag string) string {
	return filepath.Join(dataDir, fmt.Sprintf("db-%s.json", tag))
}

// ValidateTag rejects tags outside [A-Za-z0-9_-] and the reserved identity
// store name. It never touches disk.
func ValidateTag(tag string) error {
	if !tagPattern.MatchString(tag) {
		return internal.ErrInvalidTagFormat
	}
	if tag == reservedStem {
		return internal.ErrReservedTagName
	}
	return nil
}

// AuthStore returns the process-lifetime identity store.
func (m *Manager) AuthStore() *datastore.Store[AuthData] {
	return m.authStore
}

// WorkspaceStore returns the store for the currently active tag. Callers
// holding the returned handle across a SwitchTag keep operating on the
// detached, never-persisted-again copy until they finish.
func (m *Manager) WorkspaceStore() *datastore.Store[WorkspaceData] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.workStore
}

func (m *Manager) CurrentTag() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tag
}

// SwitchTag validates tag, then discards the in-memory workspace and opens
// (or creates) the file for the new tag. A full swap, not a merge: the
// previous tag's data stays on disk and becomes visible again by switching
// back. The switch is process-global.
func (m *Manager) SwitchTag(tag string) error {
	if err := ValidateTag(tag); err != nil {
		return err
	}

	store, err := datastore.Open(workspacePath(m.dataDir, tag), NewWorkspaceData)
	if err != nil {
		return fmt.Errorf("tenant: open workspace %q: %w", tag, err)
	}

	m.mu.Lock()
	previous := m.tag
	m.tag = tag
	m.workStore = store
	m.mu.Unlock()

	m.logger.Info("workspace tag switched", "from", previous, "to", tag)
	return nil
}

// Database returns the unified facade over both stores. Every service talks
// to persistence through it, which is what makes tag switching transparent
// to business logic.
func (m *Manager) Database() *Database {
	return &Database{manager: m}
}
