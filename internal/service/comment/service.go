package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"community-board/internal/domain"
	"community-board/internal/repository"
	"community-board/internal/service/media"
	"community-board/internal/service/notification"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyNotFound   = errors.New("reply not found")
	ErrParentNotFound  = errors.New("parent comment not found")
	ErrNotOwner        = errors.New("insufficient permissions for this comment")
)

const cacheTTL = 5 * time.Minute

// Service owns the comment lifecycle and the obligation to keep
// notifications consistent with comment existence.
type Service interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateCommentInput, imageURL *string) (*domain.Comment, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListTree(ctx context.Context, postID int64) ([]*domain.Comment, error)
	ListAll(ctx context.Context) ([]*domain.Comment, error)
	Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdateCommentInput, imageURL *string) (*domain.Comment, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
	DeleteReply(ctx context.Context, actor *domain.User, id int64) error
	ForceDelete(ctx context.Context, id int64) error
	ForceDeleteReply(ctx context.Context, id int64) error
}

type service struct {
	store    repository.Transactor
	repos    *repository.Repositories
	mediaSvc media.Service
	redis    *redis.Client
}

func NewService(store repository.Transactor, repos *repository.Repositories, mediaSvc media.Service, redisClient *redis.Client) Service {
	return &service{
		store:    store,
		repos:    repos,
		mediaSvc: mediaSvc,
		redis:    redisClient,
	}
}

// Create validates the target post and optional parent, then persists the
// comment and its fanout notification in one transaction. A failed
// notification insert rolls the comment back.
func (s *service) Create(ctx context.Context, actor *domain.User, input domain.CreateCommentInput, imageURL *string) (*domain.Comment, error) {
	post, err := s.repos.Post.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if input.ParentID != nil {
		parent, err := s.repos.Comment.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != input.PostID {
			return nil, ErrParentNotFound
		}
	}

	comment := &domain.Comment{
		PostID:   input.PostID,
		UserID:   actor.ID,
		ParentID: input.ParentID,
		Content:  input.Content,
		ImageURL: imageURL,
		Nickname: actor.Nickname,
		Replies:  []*domain.Comment{},
	}

	err = s.store.RunInTx(ctx, func(r *repository.Repositories) error {
		if err := r.Comment.Create(ctx, comment); err != nil {
			return err
		}
		_, err := notification.FanOutOnComment(ctx, r, comment, post, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.PostID)
	return comment, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	comment.Nickname = comment.DisplayNickname()
	return comment, nil
}

func (s *service) ListTree(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	cacheKey := fmt.Sprintf("comments:%d", postID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var tree []*domain.Comment
			if json.Unmarshal([]byte(cached), &tree) == nil {
				return tree, nil
			}
		}
	}

	comments, err := s.repos.Comment.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	domain.ApplyDisplayNicknames(comments)
	tree := domain.BuildCommentTree(comments)

	if s.redis != nil {
		if treeJSON, err := json.Marshal(tree); err == nil {
			_ = s.redis.Set(ctx, cacheKey, treeJSON, cacheTTL).Err()
		}
	}

	return tree, nil
}

// ListAll is the flat listing across all posts. Unlike ListTree it keeps
// orphaned replies visible, since nothing here depends on parent resolution.
func (s *service) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := s.repos.Comment.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	domain.ApplyDisplayNicknames(comments)
	return comments, nil
}

func (s *service) Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdateCommentInput, imageURL *string) (*domain.Comment, error) {
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != actor.ID {
		return nil, ErrNotOwner
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}
	if imageURL != nil {
		if comment.ImageURL != nil {
			if err := s.mediaSvc.DeleteImage(ctx, *comment.ImageURL); err != nil {
				log.Printf("failed to delete replaced comment image: %v", err)
			}
		}
		comment.ImageURL = imageURL
	}

	if err := s.repos.Comment.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.PostID)
	comment.Nickname = comment.DisplayNickname()
	return comment, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.remove(ctx, comment)
}

// DeleteReply only resolves comments that have a parent; a root comment id
// is reported as not found.
func (s *service) DeleteReply(ctx context.Context, actor *domain.User, id int64) error {
	reply, err := s.repos.Comment.GetReplyByID(ctx, id)
	if err != nil {
		return err
	}
	if reply == nil {
		return ErrReplyNotFound
	}
	if reply.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.remove(ctx, reply)
}

// ForceDelete is the administrative variant: same cleanup ordering, no
// ownership check.
func (s *service) ForceDelete(ctx context.Context, id int64) error {
	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return s.remove(ctx, comment)
}

func (s *service) ForceDeleteReply(ctx context.Context, id int64) error {
	reply, err := s.repos.Comment.GetReplyByID(ctx, id)
	if err != nil {
		return err
	}
	if reply == nil {
		return ErrReplyNotFound
	}
	return s.remove(ctx, reply)
}

// remove deletes the notifications referencing the comment and the comment
// row in one transaction, then best-effort removes the image object. Replies
// of the deleted comment are left in place; the tree builder drops them from
// rendered threads.
func (s *service) remove(ctx context.Context, comment *domain.Comment) error {
	err := s.store.RunInTx(ctx, func(r *repository.Repositories) error {
		if _, err := r.Notification.DeleteByComment(ctx, comment.ID); err != nil {
			return err
		}
		return r.Comment.Delete(ctx, comment.ID)
	})
	if err != nil {
		return err
	}

	if comment.ImageURL != nil {
		if err := s.mediaSvc.DeleteImage(ctx, *comment.ImageURL); err != nil {
			log.Printf("failed to delete comment image: %v", err)
		}
	}

	s.invalidateCache(ctx, comment.PostID)
	return nil
}

func (s *service) invalidateCache(ctx context.Context, postID int64) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, fmt.Sprintf("comments:%d", postID)).Err()
}
