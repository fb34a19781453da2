package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/pkg/errors"
)

// In-memory repositories backing the use case tests. Messages are kept in
// insertion order, which is also chronological order.

type fakeChatRepo struct {
	chats    map[string]*entity.Chat
	messages map[string][]*entity.Message
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chats:    make(map[string]*entity.Chat),
		messages: make(map[string][]*entity.Message),
	}
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := r.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) FindByParticipants(ctx context.Context, userA, userB, producePostID string) (*entity.Chat, error) {
	lo, hi := entity.SortParticipantPair(userA, userB)
	for _, chat := range r.chats {
		if len(chat.Participants) == 2 &&
			chat.Participants[0] == lo &&
			chat.Participants[1] == hi &&
			chat.ProducePostID == producePostID {
			return chat, nil
		}
	}
	return nil, errors.NotFound("Chat", nil)
}

func (r *fakeChatRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error) {
	var chats []*entity.Chat
	for _, chat := range r.chats {
		if chat.IsActive && chat.HasParticipant(userID) {
			chats = append(chats, chat)
		}
	}
	sort.Slice(chats, func(i, j int) bool {
		return chats[i].LastMessageAt.After(chats[j].LastMessageAt)
	})
	return chats, nil
}

func (r *fakeChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	if _, ok := r.chats[chat.ID]; !ok {
		return errors.NotFound("Chat", nil)
	}
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) SetLastMessage(ctx context.Context, chatID, preview string, at time.Time) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	chat.LastMessage = preview
	chat.LastMessageAt = at
	return nil
}

func (r *fakeChatRepo) IncrementUnread(ctx context.Context, chatID string, participantIndex int) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	switch participantIndex {
	case 0:
		chat.UnreadA++
	case 1:
		chat.UnreadB++
	}
	return nil
}

func (r *fakeChatRepo) ResetUnread(ctx context.Context, chatID string, participantIndex int) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	switch participantIndex {
	case 0:
		chat.UnreadA = 0
	case 1:
		chat.UnreadB = 0
	}
	return nil
}

func (r *fakeChatRepo) Deactivate(ctx context.Context, chatID string) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	chat.IsActive = false
	return nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	r.messages[message.ChatID] = append(r.messages[message.ChatID], message)
	return nil
}

func (r *fakeChatRepo) GetMessageByClientID(ctx context.Context, chatID, senderID, clientMessageID string) (*entity.Message, error) {
	for _, message := range r.messages[chatID] {
		if message.SenderID == senderID && message.ClientMessageID == clientMessageID {
			return message, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	all := r.messages[chatID]
	total := int64(len(all))

	// Newest first, like the real store.
	reversed := make([]*entity.Message, len(all))
	for i, message := range all {
		reversed[len(all)-1-i] = message
	}

	if offset >= len(reversed) {
		return nil, total, nil
	}
	reversed = reversed[offset:]
	if limit > 0 && limit < len(reversed) {
		reversed = reversed[:limit]
	}

	return reversed, total, nil
}

func (r *fakeChatRepo) MarkMessagesRead(ctx context.Context, chatID, readerID string, at time.Time) (int, error) {
	updated := 0
	for _, message := range r.messages[chatID] {
		if message.IsRead || message.SenderID == readerID {
			continue
		}
		message.IsRead = true
		message.ReadAt = at
		message.Status = entity.MessageStatusRead
		updated++
	}
	return updated, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeProduceRepo struct {
	posts map[string]*entity.ProducePost
}

func newFakeProduceRepo(posts ...*entity.ProducePost) *fakeProduceRepo {
	r := &fakeProduceRepo{posts: make(map[string]*entity.ProducePost)}
	for _, post := range posts {
		r.posts[post.ID] = post
	}
	return r
}

func (r *fakeProduceRepo) Create(ctx context.Context, post *entity.ProducePost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakeProduceRepo) GetByID(ctx context.Context, id string) (*entity.ProducePost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Produce post", nil)
	}
	// Hand out a copy, like a document store decode does.
	clone := *post
	return &clone, nil
}

func (r *fakeProduceRepo) List(ctx context.Context, filter repository.ProduceFilter, limit, offset int) ([]*entity.ProducePost, int64, error) {
	var posts []*entity.ProducePost
	for _, post := range r.posts {
		if post.Status != entity.ProduceStatusActive {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		posts = append(posts, post)
	}
	return posts, int64(len(posts)), nil
}

func (r *fakeProduceRepo) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.ProducePost, error) {
	var posts []*entity.ProducePost
	for _, post := range r.posts {
		if post.FarmerID == farmerID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *fakeProduceRepo) Update(ctx context.Context, post *entity.ProducePost) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakeProduceRepo) IncrementViews(ctx context.Context, id string) error {
	post, ok := r.posts[id]
	if !ok {
		return errors.NotFound("Produce post", nil)
	}
	post.Views++
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, notification := range r.notifications {
		if notification.ID == id {
			return notification, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*entity.Notification, int64, error) {
	var matched []*entity.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		notification := r.notifications[i]
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		matched = append(matched, notification)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, notification *entity.Notification) error {
	for i, existing := range r.notifications {
		if existing.ID == notification.ID {
			r.notifications[i] = notification
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string, at time.Time) (int, error) {
	updated := 0
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notification.MarkRead(at)
			updated++
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	for i, notification := range r.notifications {
		if notification.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}
