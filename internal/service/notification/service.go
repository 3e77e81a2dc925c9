package notification

import (
	"context"
	"errors"
	"fmt"

	"community-board/internal/domain"
	"community-board/internal/repository"
)

var ErrNotFound = errors.New("notification not found")

// Service covers the recipient-facing notification operations. Every lookup
// is scoped to the requesting user, so a notification addressed to someone
// else reads as not found rather than forbidden.
type Service interface {
	List(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, userID, id int64) (bool, error)
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) List(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

// MarkAsRead returns false when the notification exists but was already
// read, which callers report as a distinct success.
func (s *service) MarkAsRead(ctx context.Context, userID, id int64) (bool, error) {
	updated, err := s.notifRepo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if updated > 0 {
		return true, nil
	}

	notif, err := s.notifRepo.GetByRecipient(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if notif == nil {
		return false, ErrNotFound
	}
	return false, nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.notifRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *service) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	return s.notifRepo.DeleteAllByUser(ctx, userID)
}

// FanOutOnComment decides who a freshly created comment notifies and
// persists at most one notification through the supplied repositories, which
// are expected to be bound to the same transaction as the comment insert.
//
// A reply notifies the parent comment's author; a root comment notifies the
// post owner, resolved by login handle since posts store that key. In both
// cases self-notification is suppressed, and an unresolvable recipient
// (deleted owner, vanished parent) produces no notification rather than an
// error.
func FanOutOnComment(ctx context.Context, r *repository.Repositories, comment *domain.Comment, post *domain.Post, actor *domain.User) (*domain.Notification, error) {
	var notif *domain.Notification

	if comment.ParentID != nil {
		parent, err := r.Comment.GetByID(ctx, *comment.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent comment: %w", err)
		}
		if parent == nil || parent.UserID == actor.ID {
			return nil, nil
		}

		notif = &domain.Notification{
			UserID:    parent.UserID,
			Type:      domain.NotifReplyOnComment,
			Message:   fmt.Sprintf("%s left a reply", actor.Nickname),
			PostID:    &post.ID,
			CommentID: &comment.ID,
		}
	} else {
		owner, err := r.User.GetByHandle(ctx, post.OwnerHandle)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve post owner: %w", err)
		}
		if owner == nil || owner.ID == actor.ID {
			return nil, nil
		}

		notif = &domain.Notification{
			UserID:    owner.ID,
			Type:      domain.NotifCommentOnPost,
			Message:   fmt.Sprintf("%s commented on your post", actor.Nickname),
			PostID:    &post.ID,
			CommentID: &comment.ID,
		}
	}

	if err := r.Notification.Create(ctx, notif); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notif, nil
}
