package client

import (
	"path/filepath"
	"testing"
)

func TestSessionEstablishAndClear(t *testing.T) {
	storage := NewMemoryStorage()
	session := NewSession(storage)

	u := User{ID: "u-1", Email: "test@example.com", FullName: "Test User", Role: "user"}
	if err := session.Establish(u, "tok"); err != nil {
		t.Fatalf("establish: %v", err)
	}
	if !session.LoggedIn() {
		t.Fatal("expected authenticated session")
	}

	if err := session.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if session.LoggedIn() {
		t.Fatal("expected anonymous session after clear")
	}
	if _, ok, _ := storage.Get(sessionTokenKey); ok {
		t.Fatal("token should be removed from storage")
	}
	if _, ok, _ := storage.Get(sessionUserKey); ok {
		t.Fatal("user should be removed from storage")
	}
}

func TestSessionLoadRestoresState(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewSession(storage)
	u := User{ID: "u-1", Email: "test@example.com", FullName: "Test User"}
	if err := first.Establish(u, "tok"); err != nil {
		t.Fatalf("establish: %v", err)
	}

	second := NewSession(storage)
	if err := second.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := second.Token(); got != "tok" {
		t.Fatalf("token: got %q", got)
	}
	restored, ok := second.User()
	if !ok || restored.Email != u.Email {
		t.Fatalf("restored user: %+v ok=%v", restored, ok)
	}
}

func TestSessionLoadClearsCorruptUserEntry(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Set(sessionTokenKey, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := storage.Set(sessionUserKey, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	session := NewSession(storage)
	if err := session.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if session.LoggedIn() {
		t.Fatal("corrupt user entry should leave the session anonymous")
	}
	if _, ok := session.User(); ok {
		t.Fatal("corrupt user entry should not restore an identity")
	}
	if _, ok, _ := storage.Get(sessionTokenKey); ok {
		t.Fatal("token should be deleted along with the corrupt user entry")
	}
	if _, ok, _ := storage.Get(sessionUserKey); ok {
		t.Fatal("corrupt user entry should be deleted")
	}
}

func TestSessionLoadClearsOrphanToken(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Set(sessionTokenKey, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}

	session := NewSession(storage)
	if err := session.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if session.LoggedIn() {
		t.Fatal("token without a user should leave the session anonymous")
	}
	if got := session.Token(); got != "" {
		t.Fatalf("token: got %q, want empty", got)
	}
	if _, ok, _ := storage.Get(sessionTokenKey); ok {
		t.Fatal("orphan token should be removed from storage")
	}
}

func TestSessionLoadClearsOrphanUser(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Set(sessionUserKey, `{"id":"u-1","email":"test@example.com"}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	session := NewSession(storage)
	if err := session.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := session.User(); ok {
		t.Fatal("user without a token should not restore an identity")
	}
	if _, ok, _ := storage.Get(sessionUserKey); ok {
		t.Fatal("orphan user entry should be removed from storage")
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	storage := NewFileStorage(path)

	if _, ok, err := storage.Get("missing"); err != nil || ok {
		t.Fatalf("get on fresh store: ok=%v err=%v", ok, err)
	}

	if err := storage.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := storage.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	// A second instance on the same path sees the persisted value.
	again := NewFileStorage(path)
	v, ok, err = again.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("reload get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := storage.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := storage.Get("k"); ok {
		t.Fatal("value should be gone after delete")
	}
}
