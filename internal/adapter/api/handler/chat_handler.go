package handler

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/domain/entity"
	"janaseva/internal/usecase"
	"janaseva/pkg/response"
	"janaseva/pkg/utils"
)

const defaultMessagePageSize = 50

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createChatRequest struct {
	OtherUserID   string `json:"other_user_id" validate:"required"`
	ProducePostID string `json:"produce_post_id"`
}

type sendMessageRequest struct {
	Content         string           `json:"content"`
	Type            string           `json:"type" validate:"required,oneof=text image location"`
	ImageURL        string           `json:"image_url,omitempty" validate:"omitempty,url"`
	Location        *entity.Location `json:"location,omitempty"`
	ClientMessageID string           `json:"client_message_id,omitempty"`
}

// CreateChat returns the chat for the caller and the given user, creating it
// if the pair has never talked about that listing before.
func (h *ChatHandler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	chat, err := h.chatUseCase.GetOrCreateChat(c.Request().Context(), userID, req.OtherUserID, req.ProducePostID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

// GetUserChats lists the authenticated user's chats, latest activity first.
func (h *ChatHandler) GetUserChats(c echo.Context) error {
	userID := c.Get("uid").(string)

	chats, err := h.chatUseCase.GetUserChats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}

func (h *ChatHandler) GetChat(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	chat, err := h.chatUseCase.GetChatByID(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) GetUnreadCount(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	count, err := h.chatUseCase.GetUnreadCount(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"unread_count": count})
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ChatID:          c.Param("id"),
		Content:         req.Content,
		Type:            req.Type,
		ImageURL:        req.ImageURL,
		Location:        req.Location,
		ClientMessageID: req.ClientMessageID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetMessages returns one page of chat history in chronological order.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	params := utils.GetPaginationParams(c, defaultMessagePageSize)

	messages, total, err := h.chatUseCase.GetChatMessages(c.Request().Context(), userID, chatID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

// MarkRead zeroes the caller's unread counter and marks the other
// participant's messages as read.
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	updated, err := h.chatUseCase.MarkChatAsRead(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"updated_count": updated})
}

func (h *ChatHandler) DeactivateChat(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	if err := h.chatUseCase.DeactivateChat(c.Request().Context(), userID, chatID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"deactivated": true})
}
