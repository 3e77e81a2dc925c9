package post

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
)

var (
	ErrNotFound = errors.New("post not found")
	ErrNotOwner = errors.New("insufficient permissions for this post")
)

const cacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreatePostInput, imageURL *string) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, params domain.PostListParams) (domain.PaginatedResponse[domain.Post], error)
	Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdatePostInput, imageURL *string) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
	ForceDelete(ctx context.Context, id int64) error
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

func (s *service) Create(ctx context.Context, actor *domain.User, input domain.CreatePostInput, imageURL *string) (*domain.Post, error) {
	post := &domain.Post{
		Title:       input.Title,
		Content:     input.Content,
		ImageURL:    imageURL,
		OwnerHandle: actor.Handle,
		Nickname:    actor.Nickname,
	}

	if err := s.repos.Post.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return post, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *service) List(ctx context.Context, params domain.PostListParams) (domain.PaginatedResponse[domain.Post], error) {
	params.Pagination.Validate()
	if !params.Order.IsValid() {
		params.Order = domain.PostOrderNewest
	}

	// Keyword searches bypass the cache; only the plain paginated listings
	// are hot enough to matter.
	cacheable := s.redis != nil && params.Keyword == ""
	cacheKey := fmt.Sprintf("posts:page:%d:size:%d:order:%s",
		params.Pagination.Page, params.Pagination.PageSize, params.Order)

	if cacheable {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result domain.PaginatedResponse[domain.Post]
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	posts, total, err := s.repos.Post.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Post]{}, err
	}

	result := domain.NewPaginatedResponse(posts, params.Pagination.Page, params.Pagination.PageSize, total)

	if cacheable {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, cacheTTL).Err()
		}
	}

	return result, nil
}

func (s *service) Update(ctx context.Context, actor *domain.User, id int64, input domain.UpdatePostInput, imageURL *string) (*domain.Post, error) {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.OwnerHandle != actor.Handle {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if imageURL != nil {
		if post.ImageURL != nil {
			if err := s.mediaSvc.DeleteImage(ctx, *post.ImageURL); err != nil {
				log.Printf("failed to delete replaced post image: %v", err)
			}
		}
		post.ImageURL = imageURL
	}

	if err := s.repos.Post.Update(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return post, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.OwnerHandle != actor.Handle {
		return ErrNotOwner
	}
	return s.remove(ctx, post)
}

func (s *service) ForceDelete(ctx context.Context, id int64) error {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.remove(ctx, post)
}

// remove drops the post's notifications, its comments, and the post row in
// one transaction, then best-effort removes the image object.
func (s *service) remove(ctx context.Context, post *domain.Post) error {
	err := s.store.RunInTx(ctx, func(r *repository.Repositories) error {
		comments, err := r.Comment.ListByPost(ctx, post.ID)
		if err != nil {
			return err
		}
		for _, c := range comments {
			if _, err := r.Notification.DeleteByComment(ctx, c.ID); err != nil {
				return err
			}
			if err := r.Comment.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		return r.Post.Delete(ctx, post.ID)
	})
	if err != nil {
		return err
	}

	if post.ImageURL != nil {
		if err := s.mediaSvc.DeleteImage(ctx, *post.ImageURL); err != nil {
			log.Printf("failed to delete post image: %v", err)
		}
	}

	s.invalidateListCache(ctx)
	if s.redis != nil {
		_ = s.redis.Del(ctx, fmt.Sprintf("comments:%d", post.ID)).Err()
	}
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "posts:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
