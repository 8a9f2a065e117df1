package storage

import (
	"FileTransfer/config"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// LocalStore keeps blobs in a directory tree, one subdirectory per owner.
type LocalStore struct {
	root string
}

// NewLocalStore builds a local blob store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Write streams the blob to disk under the owner's directory, creating it
// on demand, and returns the generated name and relative path.
func (s *LocalStore) Write(ctx context.Context, ownerID uint64, originalName string, reader io.Reader, size int64) (string, string, error) {
	storedName := BuildStoredName(originalName)
	storagePath := BuildStoragePath(ownerID, storedName)

	ownerDir := filepath.Join(s.root, strconv.FormatUint(ownerID, 10))
	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		return "", "", err
	}

	dst, err := os.Create(filepath.Join(s.root, filepath.FromSlash(storagePath)))
	if err != nil {
		return "", "", err
	}
	if _, err := io.Copy(dst, reader); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", "", err
	}
	return storedName, storagePath, nil
}

// Open returns a reader over the blob at storagePath.
func (s *LocalStore) Open(ctx context.Context, storagePath string) (io.ReadCloser, ObjectInfo, error) {
	full := filepath.Join(s.root, filepath.FromSlash(storagePath))
	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, ErrBlobNotFound
		}
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		StoragePath: storagePath,
		Size:        stat.Size(),
	}
	return f, info, nil
}

// Remove deletes the blob at storagePath.
func (s *LocalStore) Remove(ctx context.Context, storagePath string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(storagePath)))
	if os.IsNotExist(err) {
		return ErrBlobNotFound
	}
	return err
}

// InitLocal initializes the local blob store root.
func InitLocal() {
	root := config.StorageConfigInstance.LocalRoot
	if err := os.MkdirAll(root, 0o755); err != nil {
		log.Fatalln("create storage root fail:", err)
	}
	Default = NewLocalStore(root)
	log.Println("init local storage success, root:", root)
}
