package config

import "sync"

const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// StorageConfig selects the blob store backend.
type StorageConfig struct {
	Driver    string `json:"driver"`     // local or minio
	LocalRoot string `json:"local_root"` // base directory for local blobs
}

var StorageConfigInstance *StorageConfig
var storageConfigOnce sync.Once

// InitStorageConfig initializes storage config.
func InitStorageConfig() {
	storageConfigOnce.Do(func() {
		StorageConfigInstance = &StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", StorageDriverLocal),
			LocalRoot: getEnv("STORAGE_LOCAL_ROOT", "uploads"),
		}
	})
}
