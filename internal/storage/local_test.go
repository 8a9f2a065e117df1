package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalWriteOpenRemove(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()
	content := []byte("hello upload")

	storedName, storagePath, err := store.Write(ctx, 7, "a.txt", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasSuffix(storedName, ".txt") {
		t.Fatalf("stored name lost extension: %s", storedName)
	}
	if !strings.HasPrefix(storagePath, "7/") {
		t.Fatalf("storage path not under owner dir: %s", storagePath)
	}

	reader, info, err := store.Open(ctx, storagePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()
	if info.Size != int64(len(content)) {
		t.Fatalf("expect size %d, got %d", len(content), info.Size)
	}
	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content mismatch: %q", got)
	}

	if err := store.Remove(ctx, storagePath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, _, err := store.Open(ctx, storagePath); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("expect ErrBlobNotFound after remove, got %v", err)
	}
	if err := store.Remove(ctx, storagePath); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("expect ErrBlobNotFound on double remove, got %v", err)
	}
}

func TestLocalWriteCreatesOwnerDir(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	_, _, err := store.Write(context.Background(), 42, "b.bin", bytes.NewReader([]byte{1, 2, 3}), 3)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "42")); err != nil {
		t.Fatalf("owner dir missing: %v", err)
	}
}

func TestBuildStoredName(t *testing.T) {
	name := BuildStoredName("photo.final.JPG")
	if !strings.HasSuffix(name, ".JPG") {
		t.Fatalf("extension not kept: %s", name)
	}
	if name == ".JPG" {
		t.Fatal("missing timestamp prefix")
	}
}

func TestBuildStoragePath(t *testing.T) {
	if got := BuildStoragePath(9, "123.txt"); got != "9/123.txt" {
		t.Fatalf("unexpected path: %s", got)
	}
}
