package unit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"community-board/internal/domain"
	"community-board/internal/repository"
	"community-board/internal/service/notification"
	"community-board/tests/mocks"
)

func fanoutRepos() (*repository.Repositories, *mocks.CommentRepository, *mocks.NotificationRepository, *mocks.UserRepository) {
	commentRepo := new(mocks.CommentRepository)
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	repos := &repository.Repositories{
		User:         userRepo,
		Comment:      commentRepo,
		Notification: notifRepo,
	}
	return repos, commentRepo, notifRepo, userRepo
}

func TestFanOutOnComment_Reply(t *testing.T) {
	ctx := context.Background()
	post := &domain.Post{ID: 10, OwnerHandle: "alice"}

	t.Run("Notifies the parent author", func(t *testing.T) {
		repos, commentRepo, notifRepo, _ := fanoutRepos()

		parent := &domain.Comment{ID: 1, PostID: 10, UserID: 7}
		reply := &domain.Comment{ID: 2, PostID: 10, UserID: 8, ParentID: ptr(1)}
		actor := &domain.User{ID: 8, Nickname: "bob"}

		commentRepo.On("GetByID", ctx, int64(1)).Return(parent, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == int64(7) &&
				n.Type == domain.NotifReplyOnComment &&
				n.Message == "bob left a reply" &&
				n.PostID != nil && *n.PostID == int64(10) &&
				n.CommentID != nil && *n.CommentID == int64(2) &&
				!n.IsRead
		})).Return(nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, reply, post, actor)

		assert.NoError(t, err)
		assert.NotNil(t, notif)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Replying to yourself is suppressed", func(t *testing.T) {
		repos, commentRepo, notifRepo, _ := fanoutRepos()

		parent := &domain.Comment{ID: 1, PostID: 10, UserID: 8}
		reply := &domain.Comment{ID: 2, PostID: 10, UserID: 8, ParentID: ptr(1)}
		actor := &domain.User{ID: 8, Nickname: "bob"}

		commentRepo.On("GetByID", ctx, int64(1)).Return(parent, nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, reply, post, actor)

		assert.NoError(t, err)
		assert.Nil(t, notif)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Vanished parent produces nothing", func(t *testing.T) {
		repos, commentRepo, notifRepo, _ := fanoutRepos()

		reply := &domain.Comment{ID: 2, PostID: 10, UserID: 8, ParentID: ptr(1)}
		actor := &domain.User{ID: 8, Nickname: "bob"}

		commentRepo.On("GetByID", ctx, int64(1)).Return(nil, nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, reply, post, actor)

		assert.NoError(t, err)
		assert.Nil(t, notif)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFanOutOnComment_RootComment(t *testing.T) {
	ctx := context.Background()
	post := &domain.Post{ID: 10, OwnerHandle: "alice"}

	t.Run("Notifies the post owner resolved by handle", func(t *testing.T) {
		repos, _, notifRepo, userRepo := fanoutRepos()

		comment := &domain.Comment{ID: 3, PostID: 10, UserID: 8}
		actor := &domain.User{ID: 8, Nickname: "bob"}

		userRepo.On("GetByHandle", ctx, "alice").Return(&domain.User{ID: 7, Handle: "alice"}, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == int64(7) &&
				n.Type == domain.NotifCommentOnPost &&
				n.Message == "bob commented on your post"
		})).Return(nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, comment, post, actor)

		assert.NoError(t, err)
		assert.NotNil(t, notif)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Commenting on your own post is suppressed", func(t *testing.T) {
		repos, _, notifRepo, userRepo := fanoutRepos()

		comment := &domain.Comment{ID: 3, PostID: 10, UserID: 7}
		actor := &domain.User{ID: 7, Handle: "alice", Nickname: "alice"}

		userRepo.On("GetByHandle", ctx, "alice").Return(&domain.User{ID: 7, Handle: "alice"}, nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, comment, post, actor)

		assert.NoError(t, err)
		assert.Nil(t, notif)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Withdrawn owner produces nothing", func(t *testing.T) {
		repos, _, notifRepo, userRepo := fanoutRepos()

		comment := &domain.Comment{ID: 3, PostID: 10, UserID: 8}
		actor := &domain.User{ID: 8, Nickname: "bob"}

		userRepo.On("GetByHandle", ctx, "alice").Return(nil, nil).Once()

		notif, err := notification.FanOutOnComment(ctx, repos, comment, post, actor)

		assert.NoError(t, err)
		assert.Nil(t, notif)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
