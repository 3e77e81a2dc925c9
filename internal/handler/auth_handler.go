package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/domain"
	"community-board/internal/middleware"
	"community-board/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Handle == "" || input.Password == "" || input.Nickname == "" {
		return middleware.BadRequest("user_id, password and nickname are required")
	}

	user, err := h.authService.Register(c.Context(), input)
	switch {
	case errors.Is(err, auth.ErrInputTooLong):
		return middleware.BadRequest("Input exceeds the length limit")
	case errors.Is(err, auth.ErrHandleExists):
		return middleware.Conflict("User ID already exists")
	case errors.Is(err, auth.ErrNicknameExists):
		return middleware.Conflict("Nickname already exists")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Registration successful",
		"user_id":  user.Handle,
		"nickname": user.Nickname,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, token, err := h.authService.Login(c.Context(), input)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return middleware.BadRequest("Invalid user ID or password")
	case errors.Is(err, auth.ErrAccountDeactivated):
		return middleware.Forbidden("Account is deactivated")
	case errors.Is(err, auth.ErrAccountBanned):
		return middleware.Forbidden("Account is banned")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"nickname":     user.Nickname,
		"is_admin":     user.IsAdmin,
	})
}
