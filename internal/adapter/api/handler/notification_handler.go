package handler

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/usecase"
	"janaseva/pkg/response"
	"janaseva/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// List returns a page of the caller's notifications together with their
// unread count, so clients can render the badge without a second call.
func (h *NotificationHandler) List(c echo.Context) error {
	userID := c.Get("uid").(string)
	unreadOnly := c.QueryParam("unreadOnly") == "true"

	params := utils.GetPaginationParams(c, 20)

	notifications, total, unread, err := h.notificationUseCase.List(c.Request().Context(), userID, params.PageSize, params.Offset, unreadOnly)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"items":        notifications,
		"total":        total,
		"page":         params.Page,
		"pageSize":     params.PageSize,
		"unread_count": unread,
	})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID := c.Get("uid").(string)
	notificationID := c.Param("id")

	notification, err := h.notificationUseCase.MarkRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notification)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	updated, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"updated_count": updated})
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"unread_count": count})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)
	notificationID := c.Param("id")

	if err := h.notificationUseCase.Delete(c.Request().Context(), userID, notificationID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"deleted": true})
}
