package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	if err := store.Save("avatars/u1/pic.webp", []byte("data")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "avatars", "u1", "pic.webp"))
	if err != nil {
		t.Fatalf("object was not written: %v", err)
	}
	if string(raw) != "data" {
		t.Errorf("wrong object content: %q", raw)
	}

	url := store.PublicURL("avatars/u1/pic.webp")
	if url != "http://localhost:8080/storage/avatars/u1/pic.webp" {
		t.Errorf("wrong public URL: %s", url)
	}
}

func TestNewLocalStoreRejectsEmptyDir(t *testing.T) {
	if _, err := NewLocalStore("", "http://localhost:8080"); err == nil {
		t.Error("NewLocalStore should reject an empty directory")
	}
}

func TestUniqueFilename(t *testing.T) {
	name := UniqueFilename("avatars/u1", "my photo (1).png")

	if !strings.HasPrefix(name, "avatars/u1/") {
		t.Errorf("missing folder prefix: %s", name)
	}
	if !strings.HasSuffix(name, "my_photo_1_.png") {
		t.Errorf("original name was not sanitized: %s", name)
	}

	other := UniqueFilename("avatars/u1", "my photo (1).png")
	if name == other {
		t.Error("two uploads of the same file must not collide")
	}
}
