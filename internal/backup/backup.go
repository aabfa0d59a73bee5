// SPDX-License-Identifier: MIT
// Package backup snapshots the inquiry database and prunes old snapshots.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	filePrefix = "solarsite-"
	timeLayout = "20060102-150405.000"
)

// BackupInfo describes a backup file on disk
type BackupInfo struct {
	Name      string
	Path      string
	Size      int64
	CreatedAt time.Time
}

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string // /var/lib/solarsite/backups/
	Retention  int    // Backups to keep; 0 keeps all
	now        func() time.Time
}

// NewBackupManager creates a new backup manager
func NewBackupManager(backupPath string, retention int) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Retention:  retention,
		now:        time.Now,
	}
}

// CreateBackup writes a snapshot of db into the backup directory and prunes
// old backups. SQLite databases are copied with VACUUM INTO; other databases
// are exported as YAML.
func (m *BackupManager) CreateBackup(ctx context.Context, db *gorm.DB) (string, error) {
	if db == nil {
		return "", fmt.Errorf("database is required")
	}
	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := m.now().UTC().Format(timeLayout)

	var path string
	if db.Dialector.Name() == "sqlite" {
		path = filepath.Join(m.BackupPath, filePrefix+stamp+".db")
		if err := db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
			return "", fmt.Errorf("failed to snapshot sqlite database: %w", err)
		}
	} else {
		path = filepath.Join(m.BackupPath, filePrefix+stamp+".yaml")
		if err := m.exportTo(ctx, db, path); err != nil {
			return "", err
		}
	}

	if _, err := m.Prune(); err != nil {
		return path, err
	}
	return path, nil
}

func (m *BackupManager) exportTo(ctx context.Context, db *gorm.DB, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if _, err := ExportInquiries(ctx, db, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// ListBackups returns backups, newest first
func (m *BackupManager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), filepath.Ext(name))
		created, err := time.Parse(timeLayout, stamp)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Name:      name,
			Path:      filepath.Join(m.BackupPath, name),
			Size:      info.Size(),
			CreatedAt: created,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Prune deletes all but the newest Retention backups and returns how many
// were removed
func (m *BackupManager) Prune() (int, error) {
	if m.Retention <= 0 {
		return 0, nil
	}

	backups, err := m.ListBackups()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, b := range backups[min(m.Retention, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", b.Name, err)
		}
		removed++
	}
	return removed, nil
}

// DeleteBackup removes a single backup by file name
func (m *BackupManager) DeleteBackup(name string) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// RestoreBackup copies a SQLite backup over dbPath. The server must not be
// running.
func (m *BackupManager) RestoreBackup(name, dbPath string) error {
	if filepath.Ext(name) != ".db" {
		return fmt.Errorf("only sqlite backups can be restored, got %s", name)
	}

	src, err := m.resolve(name)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer in.Close()

	tmp := dbPath + ".restore"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create database file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write database file: %w", err)
	}

	if err := os.Rename(tmp, dbPath); err != nil {
		return fmt.Errorf("failed to replace database: %w", err)
	}
	return nil
}

// resolve maps a backup file name to its path, rejecting anything outside
// the backup directory
func (m *BackupManager) resolve(name string) (string, error) {
	if name != filepath.Base(name) || !strings.HasPrefix(name, filePrefix) {
		return "", fmt.Errorf("invalid backup name: %s", name)
	}
	path := filepath.Join(m.BackupPath, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backup not found: %s", name)
	}
	return path, nil
}
