package usecase

import (
	"context"
	"time"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/internal/infrastructure/realtime"
	"janaseva/pkg/errors"
	"janaseva/pkg/logger"
)

type ChatUseCase struct {
	chatRepo       repository.ChatRepository
	userRepo       repository.UserRepository
	produceRepo    repository.ProducePostRepository
	notificationUC *NotificationUseCase
	hub            *realtime.Hub
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	produceRepo repository.ProducePostRepository,
	notificationUC *NotificationUseCase,
	hub *realtime.Hub,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		produceRepo:    produceRepo,
		notificationUC: notificationUC,
		hub:            hub,
	}
}

// ChatResponse is a chat annotated with the requesting user's view of it.
type ChatResponse struct {
	*entity.Chat
	ParticipantDetails []*entity.UserSummary `json:"participant_details"`
	MyUnreadCount      int                   `json:"my_unread_count"`
}

// MessageResponse is a message with its sender's summary attached.
type MessageResponse struct {
	*entity.Message
	Sender *entity.UserSummary `json:"sender,omitempty"`
}

type SendMessageInput struct {
	ChatID          string
	Content         string
	Type            string
	ImageURL        string
	Location        *entity.Location
	ClientMessageID string
}

// GetOrCreateChat returns the chat for a participant pair and listing,
// creating it on first use. Repeated calls with the same pair and listing
// always resolve to the same chat.
func (uc *ChatUseCase) GetOrCreateChat(ctx context.Context, userID, otherUserID, producePostID string) (*ChatResponse, error) {
	if otherUserID == "" {
		return nil, errors.BadRequest("Other participant is required", nil)
	}
	if otherUserID == userID {
		return nil, errors.BadRequest("Cannot start a chat with yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}

	if producePostID != "" {
		if _, err := uc.produceRepo.GetByID(ctx, producePostID); err != nil {
			return nil, err
		}
	}

	chat, err := uc.chatRepo.FindByParticipants(ctx, userID, otherUserID, producePostID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		chat = entity.NewChat(userID, otherUserID, producePostID)
		if err := uc.chatRepo.Create(ctx, chat); err != nil {
			return nil, err
		}
	}

	return uc.buildChatResponse(ctx, chat, userID), nil
}

// GetUserChats lists the user's active chats, most recent activity first.
func (uc *ChatUseCase) GetUserChats(ctx context.Context, userID string) ([]*ChatResponse, error) {
	chats, err := uc.chatRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*ChatResponse, 0, len(chats))
	summaries := make(map[string]*entity.UserSummary)

	for _, chat := range chats {
		responses = append(responses, uc.buildChatResponseCached(ctx, chat, userID, summaries))
	}

	return responses, nil
}

func (uc *ChatUseCase) GetChatByID(ctx context.Context, userID, chatID string) (*ChatResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("You don't have access to this chat", nil)
	}

	return uc.buildChatResponse(ctx, chat, userID), nil
}

// GetUnreadCount returns the requesting user's pending-message counter for a chat.
func (uc *ChatUseCase) GetUnreadCount(ctx context.Context, userID, chatID string) (int, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return 0, err
	}

	if !chat.HasParticipant(userID) {
		return 0, errors.Forbidden("You don't have access to this chat", nil)
	}

	return chat.UnreadFor(userID), nil
}

// SendMessage appends a message to a chat, bumps the recipient's unread
// counter, and notifies the recipient. The notification and realtime push
// are best effort and never fail the send.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*MessageResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(senderID) {
		return nil, errors.Forbidden("You don't have access to this chat", nil)
	}
	if !chat.IsActive {
		return nil, errors.BadRequest("This chat is no longer active", nil)
	}

	if err := validateMessageInput(input); err != nil {
		return nil, err
	}

	// A retried send with the same client token returns the original message.
	if input.ClientMessageID != "" {
		existing, err := uc.chatRepo.GetMessageByClientID(ctx, input.ChatID, senderID, input.ClientMessageID)
		if err == nil {
			return uc.buildMessageResponse(ctx, existing), nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	message := &entity.Message{
		ChatID:          input.ChatID,
		SenderID:        senderID,
		Content:         input.Content,
		Type:            input.Type,
		ImageURL:        input.ImageURL,
		Location:        input.Location,
		ClientMessageID: input.ClientMessageID,
		Status:          entity.MessageStatusSent,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.chatRepo.SetLastMessage(ctx, chat.ID, message.Preview(), message.CreatedAt); err != nil {
		logger.Error("Failed to update chat %s preview: %v", chat.ID, err)
	}

	recipient := chat.OtherParticipant(senderID)
	if err := uc.chatRepo.IncrementUnread(ctx, chat.ID, chat.ParticipantIndex(recipient)); err != nil {
		logger.Error("Failed to increment unread counter on chat %s: %v", chat.ID, err)
	}

	uc.notifyRecipient(ctx, chat, senderID, recipient)

	if event, err := realtime.NewEvent(realtime.EventReceiveMessage, message); err == nil {
		uc.hub.SendToUser(recipient, event)
	} else {
		logger.Error("Failed to build message event for chat %s: %v", chat.ID, err)
	}

	return uc.buildMessageResponse(ctx, message), nil
}

func validateMessageInput(input SendMessageInput) error {
	switch input.Type {
	case entity.MessageTypeText:
		if input.Content == "" {
			return errors.BadRequest("Text messages need content", nil)
		}
	case entity.MessageTypeImage:
		if input.ImageURL == "" {
			return errors.BadRequest("Image messages need an image URL", nil)
		}
	case entity.MessageTypeLocation:
		if input.Location == nil {
			return errors.BadRequest("Location messages need coordinates", nil)
		}
	default:
		return errors.BadRequest("Unknown message type", nil)
	}

	return nil
}

func (uc *ChatUseCase) notifyRecipient(ctx context.Context, chat *entity.Chat, senderID, recipient string) {
	senderName := "Someone"
	if sender, err := uc.userRepo.GetByID(ctx, senderID); err == nil {
		senderName = sender.Name
	}

	_, err := uc.notificationUC.Create(ctx, CreateNotificationInput{
		UserID:    recipient,
		Type:      entity.NotificationNewMessage,
		Title:     "New Message",
		Message:   senderName + " sent you a message",
		RelatedTo: entity.RelatedChat(chat.ID),
		ActionURL: "/chats/" + chat.ID,
	})
	if err != nil {
		logger.Error("Failed to create message notification for user %s: %v", recipient, err)
	}
}

// GetChatMessages returns one page of a chat's history in chronological
// order. Paging walks backwards from the newest message, so page 1 ends with
// the latest one.
func (uc *ChatUseCase) GetChatMessages(ctx context.Context, userID, chatID string, limit, offset int) ([]*MessageResponse, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	if !chat.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("You don't have access to this chat", nil)
	}

	messages, total, err := uc.chatRepo.ListMessages(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	// The repository returns newest first; flip so clients render top-down.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	summaries := make(map[string]*entity.UserSummary)
	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, &MessageResponse{
			Message: message,
			Sender:  uc.lookupSummary(ctx, message.SenderID, summaries),
		})
	}

	return responses, total, nil
}

// MarkChatAsRead zeroes the caller's unread counter and transitions every
// message from the other participant to read. Returns how many messages
// changed state.
func (uc *ChatUseCase) MarkChatAsRead(ctx context.Context, userID, chatID string) (int, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return 0, err
	}

	if !chat.HasParticipant(userID) {
		return 0, errors.Forbidden("You don't have access to this chat", nil)
	}

	if err := uc.chatRepo.ResetUnread(ctx, chatID, chat.ParticipantIndex(userID)); err != nil {
		return 0, err
	}

	return uc.chatRepo.MarkMessagesRead(ctx, chatID, userID, time.Now())
}

// DeactivateChat soft-closes a chat. History stays readable but new sends
// are rejected.
func (uc *ChatUseCase) DeactivateChat(ctx context.Context, userID, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}

	if !chat.HasParticipant(userID) {
		return errors.Forbidden("You don't have access to this chat", nil)
	}

	return uc.chatRepo.Deactivate(ctx, chatID)
}

func (uc *ChatUseCase) buildChatResponse(ctx context.Context, chat *entity.Chat, userID string) *ChatResponse {
	return uc.buildChatResponseCached(ctx, chat, userID, make(map[string]*entity.UserSummary))
}

func (uc *ChatUseCase) buildChatResponseCached(ctx context.Context, chat *entity.Chat, userID string, summaries map[string]*entity.UserSummary) *ChatResponse {
	details := make([]*entity.UserSummary, 0, len(chat.Participants))
	for _, participant := range chat.Participants {
		if summary := uc.lookupSummary(ctx, participant, summaries); summary != nil {
			details = append(details, summary)
		}
	}

	return &ChatResponse{
		Chat:               chat,
		ParticipantDetails: details,
		MyUnreadCount:      chat.UnreadFor(userID),
	}
}

func (uc *ChatUseCase) lookupSummary(ctx context.Context, userID string, cache map[string]*entity.UserSummary) *entity.UserSummary {
	if summary, ok := cache[userID]; ok {
		return summary
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load user %s for summary: %v", userID, err)
		cache[userID] = nil
		return nil
	}

	summary := user.Summary()
	cache[userID] = summary
	return summary
}

func (uc *ChatUseCase) buildMessageResponse(ctx context.Context, message *entity.Message) *MessageResponse {
	return &MessageResponse{
		Message: message,
		Sender:  uc.lookupSummary(ctx, message.SenderID, make(map[string]*entity.UserSummary)),
	}
}
