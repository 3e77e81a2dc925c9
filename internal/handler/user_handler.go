package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/domain"
	"community-board/internal/middleware"
	"community-board/internal/service/auth"
	"community-board/internal/service/user"
)

type UserHandler struct {
	userService user.Service
	authService auth.Service
}

func NewUserHandler(userService user.Service, authService auth.Service) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// UpdateNickname changes the nickname and reissues the access token, since
// the nickname is baked into the claims.
func (h *UserHandler) UpdateNickname(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	var input domain.UpdateNicknameInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Nickname == "" || len(input.Nickname) > 16 {
		return middleware.BadRequest("Invalid nickname")
	}

	updated, err := h.userService.UpdateNickname(c.Context(), actor.ID, input.Nickname)
	if errors.Is(err, user.ErrNotFound) {
		return middleware.NotFound("User not found")
	}
	if err != nil {
		return err
	}

	token, err := h.authService.IssueToken(updated)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Nickname updated",
		"nickname":     updated.Nickname,
		"access_token": token,
	})
}

func (h *UserHandler) MyPosts(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	result, err := h.userService.MyPosts(c.Context(), actor.Handle, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) MyComments(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	result, err := h.userService.MyComments(c.Context(), actor.ID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
