package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MediaService struct {
	mock.Mock
}

func (m *MediaService) StoreImage(ctx context.Context, fileName, mimeType string, size int64, r io.Reader) (string, error) {
	args := m.Called(ctx, fileName, mimeType, size, r)
	return args.String(0), args.Error(1)
}

func (m *MediaService) DeleteImage(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}
