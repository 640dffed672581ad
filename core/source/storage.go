package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"fragment-loader/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads fragments from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading prefix+ref from bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// ObjectName maps a reference to its object key.
func (s *StorageSource) ObjectName(ref string) string {
	return strings.TrimPrefix(path.Join(s.prefix, path.Clean("/"+ref)), "/")
}

// Fetch implements Source.
func (s *StorageSource) Fetch(ctx context.Context, ref string) (string, error) {
	name := s.ObjectName(ref)

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return "", s.wrap(ref, err)
	}
	defer obj.Close()

	// GetObject is lazy; a missing key only surfaces on the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		return "", s.wrap(ref, err)
	}
	return string(data), nil
}

func (s *StorageSource) wrap(ref string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return fmt.Errorf("failed to read object for %s: %w", ref, err)
}
