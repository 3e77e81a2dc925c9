package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"community-board/internal/config"
)

var (
	ErrNotAnImage = errors.New("file is not an image")
	ErrTooLarge   = errors.New("image exceeds the size limit")
)

// Service is the blob-store boundary: it stores an uploaded image and
// returns the public URL persisted on posts and comments, and removes the
// object again when the reference is replaced or deleted.
type Service interface {
	StoreImage(ctx context.Context, fileName, mimeType string, size int64, r io.Reader) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) StoreImage(ctx context.Context, fileName, mimeType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrNotAnImage
	}
	if size > s.cfg.MaxImageSize {
		return "", ErrTooLarge
	}

	ext := path.Ext(fileName)
	objectKey := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().Format("2006/01"), strings.ReplaceAll(uuid.New().String(), "-", ""), ext)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.publicURL(objectKey), nil
}

func (s *service) DeleteImage(ctx context.Context, imageURL string) error {
	objectKey, err := s.objectKey(imageURL)
	if err != nil {
		return err
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, objectKey, minio.RemoveObjectOptions{})
}

func (s *service) publicURL(objectKey string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectKey)
}

func (s *service) objectKey(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/"+s.cfg.MinIOBucket+"/")
	if key == "" || key == u.Path {
		return "", fmt.Errorf("image url %q does not belong to bucket %s", imageURL, s.cfg.MinIOBucket)
	}
	return key, nil
}
