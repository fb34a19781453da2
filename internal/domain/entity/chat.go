package entity

import (
	"sort"
	"time"
)

const (
	ChatTypeProduce = "produce"
	ChatTypeGeneral = "general"
)

// Chat is a conversation between exactly two users. Participants is stored in
// ascending order so that any {A,B} pair maps to a single canonical document;
// UnreadA and UnreadB are the pending-message counters for Participants[0] and
// Participants[1].
type Chat struct {
	ID            string    `json:"id" firestore:"id"`
	Participants  []string  `json:"participants" firestore:"participants"`
	ProducePostID string    `json:"produce_post_id,omitempty" firestore:"producePostId"`
	Type          string    `json:"type" firestore:"type"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	UnreadA       int       `json:"unread_a" firestore:"unreadA"`
	UnreadB       int       `json:"unread_b" firestore:"unreadB"`
	IsActive      bool      `json:"is_active" firestore:"isActive"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SortParticipantPair returns the canonical ordering of a two-user pair.
func SortParticipantPair(userA, userB string) (string, string) {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return pair[0], pair[1]
}

// NewChat builds a chat for a canonicalized pair. Callers must have already
// validated that the two ids are distinct and non-empty.
func NewChat(userA, userB, producePostID string) *Chat {
	lo, hi := SortParticipantPair(userA, userB)

	chatType := ChatTypeGeneral
	if producePostID != "" {
		chatType = ChatTypeProduce
	}

	return &Chat{
		Participants:  []string{lo, hi},
		ProducePostID: producePostID,
		Type:          chatType,
		LastMessageAt: time.Now(),
		IsActive:      true,
	}
}

// ParticipantIndex returns 0 or 1 for a participant, -1 otherwise.
func (c *Chat) ParticipantIndex(userID string) int {
	for i, p := range c.Participants {
		if p == userID {
			return i
		}
	}
	return -1
}

func (c *Chat) HasParticipant(userID string) bool {
	return c.ParticipantIndex(userID) >= 0
}

// OtherParticipant returns the participant that is not userID. The caller must
// have verified that userID is a participant.
func (c *Chat) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// UnreadFor returns the unread counter for userID, 0 for non-participants.
func (c *Chat) UnreadFor(userID string) int {
	switch c.ParticipantIndex(userID) {
	case 0:
		return c.UnreadA
	case 1:
		return c.UnreadB
	}
	return 0
}
