package unit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"community-board/internal/domain"
	"community-board/internal/repository"
	"community-board/internal/service/post"
	"community-board/tests/mocks"
)

type postFixture struct {
	svc         post.Service
	postRepo    *mocks.PostRepository
	commentRepo *mocks.CommentRepository
	notifRepo   *mocks.NotificationRepository
	mediaSvc    *mocks.MediaService
}

func newPostFixture() *postFixture {
	postRepo := new(mocks.PostRepository)
	commentRepo := new(mocks.CommentRepository)
	notifRepo := new(mocks.NotificationRepository)
	mediaSvc := new(mocks.MediaService)

	repos := &repository.Repositories{
		Post:         postRepo,
		Comment:      commentRepo,
		Notification: notifRepo,
	}
	store := &mocks.Transactor{Repos: repos}

	return &postFixture{
		svc:         post.NewService(store, repos, mediaSvc, nil),
		postRepo:    postRepo,
		commentRepo: commentRepo,
		notifRepo:   notifRepo,
		mediaSvc:    mediaSvc,
	}
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	actor := &domain.User{ID: 7, Handle: "alice", Nickname: "alice"}

	f := newPostFixture()
	f.postRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Title == "hello" && p.OwnerHandle == "alice" && p.Nickname == "alice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Post).ID = 10
	}).Return(nil).Once()

	created, err := f.svc.Create(ctx, actor, domain.CreatePostInput{Title: "hello", Content: "world"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	f.postRepo.AssertExpectations(t)
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid order falls back to newest", func(t *testing.T) {
		f := newPostFixture()

		f.postRepo.On("List", ctx, mock.MatchedBy(func(p domain.PostListParams) bool {
			return p.Order == domain.PostOrderNewest
		})).Return([]domain.Post{}, int64(0), nil).Once()

		params := domain.PostListParams{Order: domain.PostOrder("sideways"), Pagination: domain.DefaultPagination()}
		_, err := f.svc.List(ctx, params)

		assert.NoError(t, err)
		f.postRepo.AssertExpectations(t)
	})

	t.Run("Pagination is clamped before the query", func(t *testing.T) {
		f := newPostFixture()

		f.postRepo.On("List", ctx, mock.MatchedBy(func(p domain.PostListParams) bool {
			return p.Pagination.Page == 1 && p.Pagination.PageSize == 100
		})).Return([]domain.Post{}, int64(0), nil).Once()

		params := domain.PostListParams{
			Order:      domain.PostOrderNewest,
			Pagination: domain.PaginationParams{Page: -2, PageSize: 500},
		}
		_, err := f.svc.List(ctx, params)

		assert.NoError(t, err)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: 7, Handle: "alice"}
	other := &domain.User{ID: 8, Handle: "bob"}

	t.Run("Owner updates title and content", func(t *testing.T) {
		f := newPostFixture()
		existing := &domain.Post{ID: 10, OwnerHandle: "alice", Title: "old", Content: "old"}

		f.postRepo.On("GetByID", ctx, int64(10)).Return(existing, nil).Once()
		f.postRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.Title == "new" && p.Content == "fresh"
		})).Return(nil).Once()

		title, content := "new", "fresh"
		updated, err := f.svc.Update(ctx, owner, 10, domain.UpdatePostInput{Title: &title, Content: &content}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		f := newPostFixture()
		existing := &domain.Post{ID: 10, OwnerHandle: "alice"}

		f.postRepo.On("GetByID", ctx, int64(10)).Return(existing, nil).Once()

		title := "new"
		_, err := f.svc.Update(ctx, other, 10, domain.UpdatePostInput{Title: &title}, nil)

		assert.ErrorIs(t, err, post.ErrNotOwner)
	})

	t.Run("Unknown post", func(t *testing.T) {
		f := newPostFixture()

		f.postRepo.On("GetByID", ctx, int64(10)).Return(nil, nil).Once()

		title := "new"
		_, err := f.svc.Update(ctx, owner, 10, domain.UpdatePostInput{Title: &title}, nil)

		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: 7, Handle: "alice"}
	other := &domain.User{ID: 8, Handle: "bob"}

	t.Run("Cascades through comments and their notifications", func(t *testing.T) {
		f := newPostFixture()
		imageURL := "https://cdn.example.com/board-uploads/uploads/2024/05/p.png"
		existing := &domain.Post{ID: 10, OwnerHandle: "alice", ImageURL: &imageURL}
		comments := []*domain.Comment{
			{ID: 1, PostID: 10, UserID: 8},
			{ID: 2, PostID: 10, UserID: 9, ParentID: ptr(1)},
		}

		f.postRepo.On("GetByID", ctx, int64(10)).Return(existing, nil).Once()
		f.commentRepo.On("ListByPost", ctx, int64(10)).Return(comments, nil).Once()
		f.notifRepo.On("DeleteByComment", ctx, int64(1)).Return(int64(1), nil).Once()
		f.notifRepo.On("DeleteByComment", ctx, int64(2)).Return(int64(0), nil).Once()
		f.commentRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
		f.commentRepo.On("Delete", ctx, int64(2)).Return(nil).Once()
		f.postRepo.On("Delete", ctx, int64(10)).Return(nil).Once()
		f.mediaSvc.On("DeleteImage", ctx, imageURL).Return(nil).Once()

		err := f.svc.Delete(ctx, owner, 10)

		assert.NoError(t, err)
		f.notifRepo.AssertExpectations(t)
		f.commentRepo.AssertExpectations(t)
		f.postRepo.AssertExpectations(t)
		f.mediaSvc.AssertExpectations(t)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		f := newPostFixture()
		existing := &domain.Post{ID: 10, OwnerHandle: "alice"}

		f.postRepo.On("GetByID", ctx, int64(10)).Return(existing, nil).Once()

		err := f.svc.Delete(ctx, other, 10)

		assert.ErrorIs(t, err, post.ErrNotOwner)
	})

	t.Run("Force delete skips the ownership check", func(t *testing.T) {
		f := newPostFixture()
		existing := &domain.Post{ID: 10, OwnerHandle: "alice"}

		f.postRepo.On("GetByID", ctx, int64(10)).Return(existing, nil).Once()
		f.commentRepo.On("ListByPost", ctx, int64(10)).Return([]*domain.Comment{}, nil).Once()
		f.postRepo.On("Delete", ctx, int64(10)).Return(nil).Once()

		err := f.svc.ForceDelete(ctx, 10)

		assert.NoError(t, err)
		f.postRepo.AssertExpectations(t)
	})
}
