package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"community-board/internal/domain"
)

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Create(ctx context.Context, actor *domain.User, input domain.CreateCommentInput, imageURL *string) (*domain.Comment, error) {
	args := m.Called(ctx, actor, input, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentService) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentService) ListTree(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *CommentService) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *CommentService) Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdateCommentInput, imageURL *string) (*domain.Comment, error) {
	args := m.Called(ctx, actor, id, input, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *CommentService) DeleteReply(ctx context.Context, actor *domain.User, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *CommentService) ForceDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentService) ForceDeleteReply(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
