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

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	hub              *realtime.Hub
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, hub *realtime.Hub) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

type CreateNotificationInput struct {
	UserID    string
	Type      string
	Title     string
	Message   string
	RelatedTo *entity.RelatedRef
	ActionURL string
	Icon      string
}

// Create persists a notification and pushes it to the recipient's room. The
// realtime push is best effort; a recipient who is offline simply misses it.
func (uc *NotificationUseCase) Create(ctx context.Context, input CreateNotificationInput) (*entity.Notification, error) {
	if input.UserID == "" {
		return nil, errors.BadRequest("Recipient is required", nil)
	}
	if !entity.ValidNotificationType(input.Type) {
		return nil, errors.BadRequest("Unknown notification type", nil)
	}
	if input.Title == "" || input.Message == "" {
		return nil, errors.BadRequest("Title and message are required", nil)
	}
	if input.RelatedTo != nil && !input.RelatedTo.Kind.Valid() {
		return nil, errors.BadRequest("Unknown related entity kind", nil)
	}

	notification := &entity.Notification{
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		RelatedTo: input.RelatedTo,
		ActionURL: input.ActionURL,
		Icon:      input.Icon,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	uc.push(notification)

	return notification, nil
}

func (uc *NotificationUseCase) push(notification *entity.Notification) {
	event, err := realtime.NewEvent(realtime.EventReceiveNotification, notification)
	if err != nil {
		logger.Error("Failed to build notification event for user %s: %v", notification.UserID, err)
		return
	}

	uc.hub.SendToUser(notification.UserID, event)
}

// List returns a page of notifications plus the owner's total and unread counts.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*entity.Notification, int64, int64, error) {
	notifications, total, err := uc.notificationRepo.ListByUser(ctx, userID, limit, offset, unreadOnly)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return notifications, total, unread, nil
}

// MarkRead flips one notification to read. Marking an already-read
// notification is a no-op, not an error.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.UserID != userID {
		return nil, errors.Forbidden("You don't have access to this notification", nil)
	}

	if notification.IsRead {
		return notification, nil
	}

	notification.MarkRead(time.Now())
	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return uc.notificationRepo.MarkAllRead(ctx, userID, time.Now())
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != userID {
		return errors.Forbidden("You don't have access to this notification", nil)
	}

	return uc.notificationRepo.Delete(ctx, notificationID)
}
