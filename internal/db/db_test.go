// SPDX-License-Identifier: MIT
package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harishsolar/solarsite/internal/models"
)

func TestInitDBSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "solarsite.db")

	if err := InitDB("sqlite", dbPath); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { SetDB(nil) })

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	if !GetDB().Migrator().HasTable(&models.Inquiry{}) {
		t.Error("inquiries table not migrated")
	}
}

func TestOpenMemory(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := conn.Create(&models.Inquiry{Name: "A", Phone: "1"}).Error; err != nil {
		t.Errorf("insert failed: %v", err)
	}
	if GetDB() != nil {
		t.Error("Open should not replace the package connection")
	}
}

func TestUnsupportedDatabase(t *testing.T) {
	if err := InitDB("postgres", "dsn"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
