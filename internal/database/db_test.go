package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestSaveAndLoad(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Save("app_settings", `{"theme":"dark"}`); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	value, ok := db.Load("app_settings")
	if !ok {
		t.Fatalf("expected key to exist")
	}
	if value != `{"theme":"dark"}` {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestSaveOverwrites(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Save("k", "first"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := db.Save("k", "second"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	value, ok := db.Load("k")
	if !ok || value != "second" {
		t.Fatalf("expected last write to win, got %q (ok=%v)", value, ok)
	}
}

func TestLoadMissingKey(t *testing.T) {
	db := setupTestDB(t)

	if _, ok := db.Load("nope"); ok {
		t.Fatalf("expected missing key to report absent")
	}
}

func TestClear(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Save("a", "1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := db.Save("b", "2"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := db.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := db.Load("a"); ok {
		t.Fatalf("expected cleared key to be absent")
	}
	if _, ok := db.Load("b"); ok {
		t.Fatalf("expected cleared key to be absent")
	}
}

func TestOpErrorWrapping(t *testing.T) {
	inner := errors.New("boom")
	err := wrapSettingsErr("save", inner)
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped error to match inner")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError")
	}
	if opErr.Op != "save" || opErr.Resource != "settings" {
		t.Fatalf("unexpected OpError fields: %+v", opErr)
	}
	if wrapSettingsErr("save", nil) != nil {
		t.Fatalf("nil error should stay nil")
	}
}
