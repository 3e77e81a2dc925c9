package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/middleware"
	"community-board/internal/service/comment"
	"community-board/internal/service/post"
	"community-board/internal/service/user"
)

type AdminHandler struct {
	userService    user.Service
	postService    post.Service
	commentService comment.Service
}

func NewAdminHandler(userService user.Service, postService post.Service, commentService comment.Service) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	banned, err := h.userService.BanUser(c.Context(), c.Params("handle"))
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NotFound("User not found")
	case errors.Is(err, user.ErrAdminUntouched):
		return middleware.BadRequest("Administrators cannot be banned")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account banned: " + banned.Nickname,
	})
}

func (h *AdminHandler) UnbanUser(c *fiber.Ctx) error {
	unbanned, err := h.userService.UnbanUser(c.Context(), c.Params("handle"))
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NotFound("User not found")
	case errors.Is(err, user.ErrAdminUntouched):
		return middleware.BadRequest("Administrators cannot be unbanned")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account unbanned: " + unbanned.Nickname,
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	handle := c.Params("handle")

	err := h.userService.DeleteUser(c.Context(), handle)
	if errors.Is(err, user.ErrNotFound) {
		return middleware.NotFound("User not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account marked as deleted: " + handle,
	})
}

func (h *AdminHandler) ForceDeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return err
	}

	err = h.postService.ForceDelete(c.Context(), postID)
	if errors.Is(err, post.ErrNotFound) {
		return middleware.NotFound("Post not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post deleted"})
}

func (h *AdminHandler) ForceDeleteComment(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	err = h.commentService.ForceDelete(c.Context(), commentID)
	if errors.Is(err, comment.ErrCommentNotFound) {
		return middleware.NotFound("Comment not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Comment deleted"})
}

func (h *AdminHandler) ForceDeleteReply(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	err = h.commentService.ForceDeleteReply(c.Context(), commentID)
	if errors.Is(err, comment.ErrReplyNotFound) {
		return middleware.NotFound("Reply not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Reply deleted"})
}
