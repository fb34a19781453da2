package repository

import (
	"context"
	"time"

	"janaseva/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	// FindByParticipants looks up the chat for a canonical participant pair and
	// related listing (empty producePostID matches chats with no listing).
	FindByParticipants(ctx context.Context, userA, userB, producePostID string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	// SetLastMessage updates only the preview fields so it never races with
	// counter increments.
	SetLastMessage(ctx context.Context, chatID, preview string, at time.Time) error
	// IncrementUnread atomically bumps the counter of the participant at the
	// given index (0 or 1).
	IncrementUnread(ctx context.Context, chatID string, participantIndex int) error
	ResetUnread(ctx context.Context, chatID string, participantIndex int) error
	Deactivate(ctx context.Context, chatID string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	GetMessageByClientID(ctx context.Context, chatID, senderID, clientMessageID string) (*entity.Message, error)
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
	// MarkMessagesRead transitions every unread message in the chat not sent by
	// readerID to read and returns how many were updated.
	MarkMessagesRead(ctx context.Context, chatID, readerID string, at time.Time) (int, error)
}
