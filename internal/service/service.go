package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"community-board/internal/config"
	"community-board/internal/repository"
	"community-board/internal/service/auth"
	"community-board/internal/service/comment"
	"community-board/internal/service/media"
	"community-board/internal/service/notification"
	"community-board/internal/service/post"
	"community-board/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Post         post.Service
	Comment      comment.Service
	Notification notification.Service
	Media        media.Service
}

func NewServices(store *repository.Store, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	mediaService := media.NewService(minioClient, cfg)
	authService := auth.NewService(store.User, cfg)
	userService := user.NewService(store.User, store.Post, store.Comment)
	postService := post.NewService(store, store.Repositories, mediaService, redisClient)
	commentService := comment.NewService(store, store.Repositories, mediaService, redisClient)
	notificationService := notification.NewService(store.Notification)

	return &Services{
		Auth:         authService,
		User:         userService,
		Post:         postService,
		Comment:      commentService,
		Notification: notificationService,
		Media:        mediaService,
	}
}
