package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/domain"
	"community-board/internal/middleware"
	"community-board/internal/service"
	"community-board/internal/service/media"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Post         *PostHandler
	Comment      *CommentHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User, services.Auth),
		Post:         NewPostHandler(services.Post, services.Media),
		Comment:      NewCommentHandler(services.Comment, services.Media),
		Notification: NewNotificationHandler(services.Notification),
		Admin:        NewAdminHandler(services.User, services.Post, services.Comment),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if page := c.QueryInt("page"); page > 0 {
		params.Page = page
	}
	if size := c.QueryInt("page_size"); size > 0 && size <= 100 {
		params.PageSize = size
	}
	return params
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

// storeUploadedImage pushes an optional multipart "file" field to the blob
// store and returns its public URL, or nil when no file was attached.
func storeUploadedImage(c *fiber.Ctx, mediaSvc media.Service) (*string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, middleware.BadRequest("Unable to read uploaded file")
	}
	defer f.Close()

	url, err := mediaSvc.StoreImage(c.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, f)
	switch {
	case errors.Is(err, media.ErrNotAnImage):
		return nil, middleware.BadRequest("Only image uploads are allowed")
	case errors.Is(err, media.ErrTooLarge):
		return nil, middleware.PayloadTooLarge("Image exceeds the size limit")
	case err != nil:
		return nil, middleware.StorageFailure("Failed to store image")
	}
	return &url, nil
}

// discardUploadedImage removes an object stored earlier in the request whose
// owning write did not go through, so rejected requests leave no stray blobs.
func discardUploadedImage(c *fiber.Ctx, mediaSvc media.Service, imageURL *string) {
	if imageURL == nil {
		return
	}
	if err := mediaSvc.DeleteImage(c.Context(), *imageURL); err != nil {
		log.Printf("failed to discard uploaded image: %v", err)
	}
}
