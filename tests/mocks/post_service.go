package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"community-board/internal/domain"
)

type PostService struct {
	mock.Mock
}

func (m *PostService) Create(ctx context.Context, actor *domain.User, input domain.CreatePostInput, imageURL *string) (*domain.Post, error) {
	args := m.Called(ctx, actor, input, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostService) List(ctx context.Context, params domain.PostListParams) (domain.PaginatedResponse[domain.Post], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Post]), args.Error(1)
}

func (m *PostService) Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdatePostInput, imageURL *string) (*domain.Post, error) {
	args := m.Called(ctx, actor, id, input, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *PostService) ForceDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
