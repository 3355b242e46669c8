package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore implements Store on a Cloud Storage bucket. Uploaded objects are
// reachable at https://storage.googleapis.com/<bucket>/<destPath>.
type GCSStore struct {
	bucket     *storage.BucketHandle
	bucketName string
	timeout    time.Duration
}

func NewGCSStore(bucket *storage.BucketHandle, bucketName string, timeout time.Duration) *GCSStore {
	return &GCSStore{bucket: bucket, bucketName: bucketName, timeout: timeout}
}

func (s *GCSStore) Upload(ctx context.Context, localPath, destPath, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("object store: open staged file: %w", err)
	}
	defer f.Close()

	w := s.bucket.Object(destPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("object store: upload %s: %w", destPath, err)
	}
	// Close commits the object; upload errors surface here too.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("object store: upload %s: %w", destPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, destPath), nil
}
