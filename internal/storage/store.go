package storage

import (
	"FileHaven/config"
	"context"
	"io"
	"log"
)

// PutOptions describes upload options for object storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	ObjectName string
	Size       int64
}

// Store abstracts the backing object storage. Object names are stored-names:
// flat, server-generated, never caller-supplied paths.
type Store interface {
	PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error
	GetObject(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error)
	StatObject(ctx context.Context, object string) (ObjectInfo, error)
	RemoveObject(ctx context.Context, object string) error
}

// Default is the main object store instance.
var Default Store

// InitStorage selects and initializes the configured backend.
func InitStorage() {
	switch config.AppConfig.StorageBackend {
	case "minio":
		InitMinio()
	default:
		store, err := NewLocalStore(config.AppConfig.StorageRoot)
		if err != nil {
			log.Fatal("init local storage fail:", err)
		}
		log.Println("init local storage success")
		Default = store
	}
}
