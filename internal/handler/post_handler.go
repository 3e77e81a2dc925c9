package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/domain"
	"community-board/internal/middleware"
	"community-board/internal/service/media"
	"community-board/internal/service/post"
)

type PostHandler struct {
	postService  post.Service
	mediaService media.Service
}

func NewPostHandler(postService post.Service, mediaService media.Service) *PostHandler {
	return &PostHandler{postService: postService, mediaService: mediaService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	input := domain.CreatePostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}
	if input.Title == "" || input.Content == "" {
		return middleware.BadRequest("title and content are required")
	}

	imageURL, err := storeUploadedImage(c, h.mediaService)
	if err != nil {
		return err
	}

	created, err := h.postService.Create(c.Context(), actor, input, imageURL)
	if err != nil {
		discardUploadedImage(c, h.mediaService, imageURL)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	order := domain.PostOrder(c.Query("order", string(domain.PostOrderNewest)))
	if !order.IsValid() {
		return middleware.BadRequest("Invalid order")
	}

	params := domain.PostListParams{
		Pagination: getPaginationParams(c),
		Keyword:    c.Query("keyword"),
		Order:      order,
	}

	result, err := h.postService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return err
	}

	found, err := h.postService.GetByID(c.Context(), postID)
	if errors.Is(err, post.ErrNotFound) {
		return middleware.NotFound("Post not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return err
	}

	var input domain.UpdatePostInput
	if title := c.FormValue("title"); title != "" {
		input.Title = &title
	}
	if content := c.FormValue("content"); content != "" {
		input.Content = &content
	}

	imageURL, err := storeUploadedImage(c, h.mediaService)
	if err != nil {
		return err
	}

	updated, err := h.postService.Update(c.Context(), actor, postID, input, imageURL)
	if err != nil {
		discardUploadedImage(c, h.mediaService, imageURL)
		switch {
		case errors.Is(err, post.ErrNotFound):
			return middleware.NotFound("Post not found")
		case errors.Is(err, post.ErrNotOwner):
			return middleware.Forbidden("You do not have permission to edit this post")
		default:
			return err
		}
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return err
	}

	err = h.postService.Delete(c.Context(), actor, postID)
	switch {
	case errors.Is(err, post.ErrNotFound):
		return middleware.NotFound("Post not found")
	case errors.Is(err, post.ErrNotOwner):
		return middleware.Forbidden("You do not have permission to delete this post")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post deleted"})
}
