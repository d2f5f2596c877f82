package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxUploadBytes is the ceiling for a single image upload.
const MaxUploadBytes = 10 << 20

var (
	ErrNotImage = errors.New("file must be an image")
	ErrTooLarge = errors.New("file size must be less than 10MB")
)

// Asset is what the image store hands back for an upload: a durable public
// URL and the handle needed to delete the object later.
type Asset struct {
	URL string
	ID  string
}

type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, baseURL string) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	if baseURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
	}

	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// ValidateImage enforces the uniform upload contract: declared image type and
// the size ceiling. Violations are client errors, not server errors.
func ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}

func (s *Store) Upload(ctx context.Context, r io.Reader, size int64, objectName, contentType string) (Asset, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Asset{}, err
	}
	return Asset{
		URL: s.baseURL + "/" + info.Key,
		ID:  info.Key,
	}, nil
}

func (s *Store) Remove(ctx context.Context, id string) error {
	return s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{})
}
