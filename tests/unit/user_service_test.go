package unit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"community-board/internal/domain"
	"community-board/internal/service/user"
	"community-board/tests/mocks"
)

func newUserService() (user.Service, *mocks.UserRepository, *mocks.PostRepository, *mocks.CommentRepository) {
	userRepo := new(mocks.UserRepository)
	postRepo := new(mocks.PostRepository)
	commentRepo := new(mocks.CommentRepository)
	return user.NewService(userRepo, postRepo, commentRepo), userRepo, postRepo, commentRepo
}

func TestUserService_UpdateNickname(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes the live nickname", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, Nickname: "old"}, nil).Once()
		userRepo.On("UpdateNickname", ctx, int64(7), "new").Return(nil).Once()

		updated, err := svc.UpdateNickname(ctx, 7, "new")

		assert.NoError(t, err)
		assert.Equal(t, "new", updated.Nickname)
		userRepo.AssertExpectations(t)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByID", ctx, int64(7)).Return(nil, nil).Once()

		_, err := svc.UpdateNickname(ctx, 7, "new")

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserService_Ban(t *testing.T) {
	ctx := context.Background()

	t.Run("Bans a regular user", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "bob").Return(&domain.User{ID: 8, Handle: "bob"}, nil).Once()
		userRepo.On("SetBanned", ctx, int64(8), true).Return(nil).Once()

		banned, err := svc.BanUser(ctx, "bob")

		assert.NoError(t, err)
		assert.True(t, banned.IsBanned)
	})

	t.Run("Unban clears the flag", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "bob").Return(&domain.User{ID: 8, Handle: "bob", IsBanned: true}, nil).Once()
		userRepo.On("SetBanned", ctx, int64(8), false).Return(nil).Once()

		unbanned, err := svc.UnbanUser(ctx, "bob")

		assert.NoError(t, err)
		assert.False(t, unbanned.IsBanned)
	})

	t.Run("Administrators cannot be banned", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "root").Return(&domain.User{ID: 1, Handle: "root", IsAdmin: true}, nil).Once()

		_, err := svc.BanUser(ctx, "root")

		assert.ErrorIs(t, err, user.ErrAdminUntouched)
		userRepo.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown handle", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "ghost").Return(nil, nil).Once()

		_, err := svc.BanUser(ctx, "ghost")

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks the account deleted", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "bob").Return(&domain.User{ID: 8, Handle: "bob"}, nil).Once()
		userRepo.On("MarkDeleted", ctx, int64(8)).Return(nil).Once()

		assert.NoError(t, svc.DeleteUser(ctx, "bob"))
		userRepo.AssertExpectations(t)
	})

	t.Run("Unknown handle", func(t *testing.T) {
		svc, userRepo, _, _ := newUserService()

		userRepo.On("GetByHandle", ctx, "ghost").Return(nil, nil).Once()

		assert.ErrorIs(t, svc.DeleteUser(ctx, "ghost"), user.ErrNotFound)
	})
}

func TestUserService_MyActivity(t *testing.T) {
	ctx := context.Background()
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	t.Run("MyPosts wraps the owner listing", func(t *testing.T) {
		svc, _, postRepo, _ := newUserService()
		summaries := []domain.PostSummary{{ID: 10, Title: "hello"}}

		postRepo.On("ListByOwner", ctx, "alice", params).Return(summaries, int64(1), nil).Once()

		resp, err := svc.MyPosts(ctx, "alice", params)

		assert.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(1), resp.TotalItems)
	})

	t.Run("MyComments wraps the author listing", func(t *testing.T) {
		svc, _, _, commentRepo := newUserService()
		summaries := []domain.CommentSummary{{ID: 5, PostID: 10}}

		commentRepo.On("ListByAuthor", ctx, int64(7), params).Return(summaries, int64(1), nil).Once()

		resp, err := svc.MyComments(ctx, 7, params)

		assert.NoError(t, err)
		assert.Len(t, resp.Data, 1)
	})
}
