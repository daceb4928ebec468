package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesParentDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "platelog.db")

	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	defer Close(DB)

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected parent dir to exist: %v", err)
	}

	if !DB.Migrator().HasTable(&DocumentBlob{}) {
		t.Fatal("expected documents table to be migrated")
	}
}

func TestInitRejectsFileAsParent(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write blocker file: %v", err)
	}

	if err := Init(filepath.Join(blocker, "platelog.db")); err == nil {
		t.Fatal("expected error when parent path is a file")
	}
}
