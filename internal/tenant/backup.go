package tenant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// backupVersion identifies the archive layout for future restores.
const backupVersion = "1"

// BackupArchive snapshots the identity store and the active workspace into
// one document.
type BackupArchive struct {
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Tag       string         `json:"tag"`
	Auth      *AuthData      `json:"auth"`
	Data      *WorkspaceData `json:"data"`
}

// Backup writes a timestamped archive file into the data directory and
// returns its path. The snapshot reflects the in-memory state, which is
// at least as new as what is on disk.
func (m *Manager) Backup() (string, error) {
	// Marshal while the lock is held: the archive struct only carries
	// pointers into the live stores, so encoding after release could tear
	// the snapshot.
	m.mu.RLock()
	archive := BackupArchive{
		Timestamp: time.Now().UTC(),
		Version:   backupVersion,
		Tag:       m.tag,
		Auth:      m.authStore.Data(),
		Data:      m.workStore.Data(),
	}
	raw, err := json.MarshalIndent(archive, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("tenant: marshal backup: %w", err)
	}

	name := fmt.Sprintf("backup-%s-%s.json", archive.Tag, archive.Timestamp.Format("20060102T150405Z"))
	path := filepath.Join(m.dataDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("tenant: write backup: %w", err)
	}

	m.logger.Info("backup created", "file", path, "tag", archive.Tag)
	return path, nil
}
