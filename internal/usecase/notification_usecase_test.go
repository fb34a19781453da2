package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janaseva/internal/domain/entity"
	"janaseva/internal/infrastructure/realtime"
	"janaseva/pkg/errors"
)

func newNotificationTestEnv() (*NotificationUseCase, *fakeNotificationRepo) {
	repo := newFakeNotificationRepo()
	return NewNotificationUseCase(repo, realtime.NewHub()), repo
}

func TestCreateNotificationValidatesInput(t *testing.T) {
	uc, _ := newNotificationTestEnv()
	ctx := context.Background()

	cases := []CreateNotificationInput{
		{Type: entity.NotificationSystem, Title: "t", Message: "m"},
		{UserID: "bob", Type: "party_invite", Title: "t", Message: "m"},
		{UserID: "bob", Type: entity.NotificationSystem, Message: "m"},
		{UserID: "bob", Type: entity.NotificationSystem, Title: "t"},
		{UserID: "bob", Type: entity.NotificationSystem, Title: "t", Message: "m",
			RelatedTo: &entity.RelatedRef{Kind: "galaxy", ID: "x"}},
	}

	for _, input := range cases {
		_, err := uc.Create(ctx, input)
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "expected BAD_REQUEST for %+v", input)
	}
}

func TestCreateNotificationPersists(t *testing.T) {
	uc, repo := newNotificationTestEnv()

	notification, err := uc.Create(context.Background(), CreateNotificationInput{
		UserID:    "bob",
		Type:      entity.NotificationNewInterest,
		Title:     "New Interest in Your Product!",
		Message:   "Alice is interested in your Tomatoes",
		RelatedTo: entity.RelatedProducePost("tomatoes"),
		ActionURL: "/produce/tomatoes",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, notification.ID)
	assert.False(t, notification.IsRead)
	assert.Len(t, repo.notifications, 1)
	assert.Equal(t, entity.RelatedKindProducePost, repo.notifications[0].RelatedTo.Kind)
}

func TestMarkReadIsOwnerOnlyAndIdempotent(t *testing.T) {
	uc, _ := newNotificationTestEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateNotificationInput{
		UserID:  "bob",
		Type:    entity.NotificationSystem,
		Title:   "Welcome",
		Message: "Hello",
	})
	require.NoError(t, err)

	_, err = uc.MarkRead(ctx, "alice", created.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	read, err := uc.MarkRead(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.False(t, read.ReadAt.IsZero())

	firstReadAt := read.ReadAt

	// Second call does not move the read timestamp.
	again, err := uc.MarkRead(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.Equal(t, firstReadAt, again.ReadAt)
}

func TestMarkAllReadZeroesUnreadCount(t *testing.T) {
	uc, _ := newNotificationTestEnv()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, CreateNotificationInput{
			UserID:  "bob",
			Type:    entity.NotificationNewMessage,
			Title:   "New Message",
			Message: "Alice sent you a message",
		})
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, CreateNotificationInput{
		UserID:  "alice",
		Type:    entity.NotificationSystem,
		Title:   "Welcome",
		Message: "Hello",
	})
	require.NoError(t, err)

	updated, err := uc.MarkAllRead(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	count, err := uc.UnreadCount(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Other users' notifications are untouched.
	count, err = uc.UnreadCount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListFiltersUnreadOnly(t *testing.T) {
	uc, _ := newNotificationTestEnv()
	ctx := context.Background()

	first, err := uc.Create(ctx, CreateNotificationInput{
		UserID:  "bob",
		Type:    entity.NotificationSystem,
		Title:   "One",
		Message: "m",
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateNotificationInput{
		UserID:  "bob",
		Type:    entity.NotificationSystem,
		Title:   "Two",
		Message: "m",
	})
	require.NoError(t, err)

	_, err = uc.MarkRead(ctx, "bob", first.ID)
	require.NoError(t, err)

	items, total, unread, err := uc.List(ctx, "bob", 20, 0, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), unread)
	require.Len(t, items, 1)
	assert.Equal(t, "Two", items[0].Title)

	items, total, _, err = uc.List(ctx, "bob", 20, 0, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestDeleteIsOwnerOnly(t *testing.T) {
	uc, repo := newNotificationTestEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateNotificationInput{
		UserID:  "bob",
		Type:    entity.NotificationSystem,
		Title:   "Bye",
		Message: "m",
	})
	require.NoError(t, err)

	err = uc.Delete(ctx, "alice", created.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.Delete(ctx, "bob", created.ID))
	assert.Empty(t, repo.notifications)

	err = uc.Delete(ctx, "bob", created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
