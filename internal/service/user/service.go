package user

import (
	"context"
	"errors"

	"community-board/internal/domain"
	"community-board/internal/repository"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrAdminUntouched = errors.New("administrators cannot be banned or unbanned")
)

type Service interface {
	UpdateNickname(ctx context.Context, userID int64, nickname string) (*domain.User, error)
	MyPosts(ctx context.Context, handle string, params domain.PaginationParams) (domain.PaginatedResponse[domain.PostSummary], error)
	MyComments(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.CommentSummary], error)

	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	BanUser(ctx context.Context, handle string) (*domain.User, error)
	UnbanUser(ctx context.Context, handle string) (*domain.User, error)
	DeleteUser(ctx context.Context, handle string) error
}

type service struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewService(userRepo repository.UserRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) Service {
	return &service{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// UpdateNickname changes the live nickname only; nicknames denormalized onto
// existing comments keep their historical value.
func (s *service) UpdateNickname(ctx context.Context, userID int64, nickname string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.UpdateNickname(ctx, userID, nickname); err != nil {
		return nil, err
	}

	user.Nickname = nickname
	return user, nil
}

func (s *service) MyPosts(ctx context.Context, handle string, params domain.PaginationParams) (domain.PaginatedResponse[domain.PostSummary], error) {
	posts, total, err := s.postRepo.ListByOwner(ctx, handle, params)
	if err != nil {
		return domain.PaginatedResponse[domain.PostSummary]{}, err
	}
	return domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total), nil
}

func (s *service) MyComments(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.CommentSummary], error) {
	comments, total, err := s.commentRepo.ListByAuthor(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentSummary]{}, err
	}
	return domain.NewPaginatedResponse(comments, params.Page, params.PageSize, total), nil
}

func (s *service) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	return s.userRepo.ListActive(ctx)
}

func (s *service) BanUser(ctx context.Context, handle string) (*domain.User, error) {
	return s.setBanned(ctx, handle, true)
}

func (s *service) UnbanUser(ctx context.Context, handle string) (*domain.User, error) {
	return s.setBanned(ctx, handle, false)
}

func (s *service) setBanned(ctx context.Context, handle string, banned bool) (*domain.User, error) {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.IsAdmin {
		return nil, ErrAdminUntouched
	}

	if err := s.userRepo.SetBanned(ctx, user.ID, banned); err != nil {
		return nil, err
	}

	user.IsBanned = banned
	return user, nil
}

// DeleteUser is a soft delete: the row stays so historical posts and
// comments keep resolving, but the account disappears from listings and
// authentication, and post views show the withdrawn placeholder. Comment
// nicknames keep their denormalized historical value.
func (s *service) DeleteUser(ctx context.Context, handle string) error {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.userRepo.MarkDeleted(ctx, user.ID)
}
