package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortParticipantPair(t *testing.T) {
	lo, hi := SortParticipantPair("zara", "amit")
	assert.Equal(t, "amit", lo)
	assert.Equal(t, "zara", hi)

	lo, hi = SortParticipantPair("amit", "zara")
	assert.Equal(t, "amit", lo)
	assert.Equal(t, "zara", hi)
}

func TestNewChatCanonicalizesParticipants(t *testing.T) {
	chat := NewChat("zara", "amit", "")

	assert.Equal(t, []string{"amit", "zara"}, chat.Participants)
	assert.Equal(t, ChatTypeGeneral, chat.Type)
	assert.True(t, chat.IsActive)

	withListing := NewChat("amit", "zara", "post-1")
	assert.Equal(t, ChatTypeProduce, withListing.Type)
	assert.Equal(t, "post-1", withListing.ProducePostID)
}

func TestChatParticipantHelpers(t *testing.T) {
	chat := NewChat("amit", "zara", "")
	chat.UnreadA = 2
	chat.UnreadB = 5

	assert.Equal(t, 0, chat.ParticipantIndex("amit"))
	assert.Equal(t, 1, chat.ParticipantIndex("zara"))
	assert.Equal(t, -1, chat.ParticipantIndex("intruder"))

	assert.True(t, chat.HasParticipant("amit"))
	assert.False(t, chat.HasParticipant("intruder"))

	assert.Equal(t, "zara", chat.OtherParticipant("amit"))
	assert.Equal(t, "amit", chat.OtherParticipant("zara"))

	assert.Equal(t, 2, chat.UnreadFor("amit"))
	assert.Equal(t, 5, chat.UnreadFor("zara"))
	assert.Equal(t, 0, chat.UnreadFor("intruder"))
}

func TestMessagePreview(t *testing.T) {
	text := &Message{Type: MessageTypeText, Content: "see you at the market"}
	assert.Equal(t, "see you at the market", text.Preview())

	image := &Message{Type: MessageTypeImage, ImageURL: "https://example.com/a.jpg"}
	assert.Equal(t, "Sent a image", image.Preview())

	location := &Message{Type: MessageTypeLocation}
	assert.Equal(t, "Sent a location", location.Preview())
}
