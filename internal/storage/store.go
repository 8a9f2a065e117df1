package storage

import (
	"FileTransfer/config"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"
)

// ErrBlobNotFound is returned when a storage path has no blob behind it.
var ErrBlobNotFound = errors.New("blob not found")

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	StoragePath string
	Size        int64
}

// BlobStore abstracts blob storage. Write must finish before the caller
// registers any metadata pointing at the returned path.
type BlobStore interface {
	Write(ctx context.Context, ownerID uint64, originalName string, reader io.Reader, size int64) (storedName, storagePath string, err error)
	Open(ctx context.Context, storagePath string) (io.ReadCloser, ObjectInfo, error)
	Remove(ctx context.Context, storagePath string) error
}

// Default is the blob store selected at startup.
var Default BlobStore

// BuildStoredName derives a collision-resistant storage filename from the
// original name, keeping its extension.
func BuildStoredName(originalName string) string {
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), path.Ext(originalName))
}

// BuildStoragePath places a stored name under its owner's directory. The
// result is relative and slash-separated regardless of platform.
func BuildStoragePath(ownerID uint64, storedName string) string {
	return path.Join(strconv.FormatUint(ownerID, 10), storedName)
}

// InitBlobStore picks the blob backend from storage config.
func InitBlobStore() {
	switch config.StorageConfigInstance.Driver {
	case config.StorageDriverMinio:
		InitMinio()
	default:
		InitLocal()
	}
}
