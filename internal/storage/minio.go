package storage

import (
	"FileTransfer/config"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements BlobStore on a MinIO bucket. The storage path is
// used verbatim as the object key.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a BlobStore from a MinIO client and bucket.
func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

// Write uploads the blob as an object keyed by owner directory and
// generated name.
func (s *MinioStore) Write(ctx context.Context, ownerID uint64, originalName string, reader io.Reader, size int64) (string, string, error) {
	storedName := BuildStoredName(originalName)
	storagePath := BuildStoragePath(ownerID, storedName)
	_, err := s.client.PutObject(ctx, s.bucket, storagePath, reader, size, minio.PutObjectOptions{})
	if err != nil {
		return "", "", err
	}
	return storedName, storagePath, nil
}

// Open fetches the object and its size.
func (s *MinioStore) Open(ctx context.Context, storagePath string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, storagePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrBlobNotFound
		}
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		StoragePath: storagePath,
		Size:        stat.Size,
	}
	return obj, info, nil
}

// Remove deletes the object.
func (s *MinioStore) Remove(ctx context.Context, storagePath string) error {
	return s.client.RemoveObject(ctx, s.bucket, storagePath, minio.RemoveObjectOptions{})
}

func newMinioClient() *minio.Client {
	client, err := minio.New(fmt.Sprintf("%s:%s", config.AppConfig.MinioHost, config.AppConfig.MinioPort), &minio.Options{
		Creds:  credentials.NewStaticV4(config.AppConfig.MinioUsername, config.AppConfig.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalln("minio error:", err)
	}
	return client
}

func ensureBucket(client *minio.Client, bucket string) {
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalln("check bucket fail:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalln("create bucket fail:", err)
		}
	}
}

// InitMinio initializes the MinIO-backed blob store.
func InitMinio() {
	client := newMinioClient()
	ensureBucket(client, config.AppConfig.BucketName)
	Default = NewMinioStore(client, config.AppConfig.BucketName)
	log.Println("init minio storage success")
}

// InitMinioTest initializes the MinIO-backed blob store on the test bucket.
func InitMinioTest() {
	client := newMinioClient()
	ensureBucket(client, config.AppConfig.BucketNameTest)
	Default = NewMinioStore(client, config.AppConfig.BucketNameTest)
	log.Println("init minio test storage success")
}
