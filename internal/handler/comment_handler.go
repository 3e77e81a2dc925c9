package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/domain"
	"community-board/internal/middleware"
	"community-board/internal/service/comment"
	"community-board/internal/service/media"
)

type CommentHandler struct {
	commentService comment.Service
	mediaService   media.Service
}

func NewCommentHandler(commentService comment.Service, mediaService media.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService, mediaService: mediaService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	content := c.FormValue("content")
	if content == "" {
		return middleware.BadRequest("content is required")
	}

	postID, err := strconv.ParseInt(c.FormValue("post_id"), 10, 64)
	if err != nil || postID < 1 {
		return middleware.BadRequest("Invalid post_id")
	}

	input := domain.CreateCommentInput{
		PostID:  postID,
		Content: content,
	}
	if raw := c.FormValue("parent_id"); raw != "" {
		parentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parentID < 1 {
			return middleware.BadRequest("Invalid parent_id")
		}
		input.ParentID = &parentID
	}

	imageURL, err := storeUploadedImage(c, h.mediaService)
	if err != nil {
		return err
	}

	created, err := h.commentService.Create(c.Context(), actor, input, imageURL)
	if err != nil {
		discardUploadedImage(c, h.mediaService, imageURL)
		switch {
		case errors.Is(err, comment.ErrPostNotFound):
			return middleware.NotFound("Post not found")
		case errors.Is(err, comment.ErrParentNotFound):
			return middleware.NotFound("Parent comment not found")
		default:
			return err
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Get returns a single comment, root or reply, with the display nickname
// already substituted.
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	found, err := h.commentService.GetByID(c.Context(), commentID)
	if errors.Is(err, comment.ErrCommentNotFound) {
		return middleware.NotFound("Comment not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

// ListAll is the flat listing across every post, orphaned replies included.
func (h *CommentHandler) ListAll(c *fiber.Ctx) error {
	comments, err := h.commentService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *CommentHandler) ListTree(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return err
	}

	tree, err := h.commentService.ListTree(c.Context(), postID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tree)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	var input domain.UpdateCommentInput
	if content := c.FormValue("content"); content != "" {
		input.Content = &content
	}

	imageURL, err := storeUploadedImage(c, h.mediaService)
	if err != nil {
		return err
	}

	updated, err := h.commentService.Update(c.Context(), actor, commentID, input, imageURL)
	if err != nil {
		discardUploadedImage(c, h.mediaService, imageURL)
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			return middleware.NotFound("Comment not found")
		case errors.Is(err, comment.ErrNotOwner):
			return middleware.Forbidden("You do not have permission to edit this comment")
		default:
			return err
		}
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	err = h.commentService.Delete(c.Context(), actor, commentID)
	switch {
	case errors.Is(err, comment.ErrCommentNotFound):
		return middleware.NotFound("Comment not found")
	case errors.Is(err, comment.ErrNotOwner):
		return middleware.Forbidden("You do not have permission to delete this comment")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Comment deleted"})
}

func (h *CommentHandler) DeleteReply(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	err = h.commentService.DeleteReply(c.Context(), actor, commentID)
	switch {
	case errors.Is(err, comment.ErrReplyNotFound):
		return middleware.NotFound("Reply not found")
	case errors.Is(err, comment.ErrNotOwner):
		return middleware.Forbidden("You do not have permission to delete this reply")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Reply deleted"})
}
