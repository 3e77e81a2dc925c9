package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"community-board/internal/middleware"
	"community-board/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	result, err := h.notifService.List(c.Context(), user.ID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	count, err := h.notifService.UnreadCount(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unread_count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	notifID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	updated, err := h.notifService.MarkAsRead(c.Context(), user.ID, notifID)
	if errors.Is(err, notification.ErrNotFound) {
		return middleware.NotFound("Notification not found")
	}
	if err != nil {
		return err
	}

	if !updated {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification was already read"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	updated, err := h.notifService.MarkAllAsRead(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All notifications marked as read",
		"updated": updated,
	})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	notifID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	err = h.notifService.Delete(c.Context(), user.ID, notifID)
	if errors.Is(err, notification.ErrNotFound) {
		return middleware.NotFound("Notification not found")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification deleted"})
}

func (h *NotificationHandler) DeleteAll(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	deleted, err := h.notifService.DeleteAll(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All notifications deleted",
		"deleted": deleted,
	})
}
