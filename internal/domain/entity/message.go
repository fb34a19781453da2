package entity

import "time"

const (
	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeLocation = "location"
)

const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

// Location is the payload of a location message.
type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
	Address   string  `json:"address,omitempty" firestore:"address,omitempty"`
}

// Message is a single entry in a chat. After creation only the read fields
// (IsRead, ReadAt, Status) change.
type Message struct {
	ID              string    `json:"id" firestore:"id"`
	ChatID          string    `json:"chat_id" firestore:"chatId"`
	SenderID        string    `json:"sender_id" firestore:"senderId"`
	Content         string    `json:"content,omitempty" firestore:"content"`
	Type            string    `json:"type" firestore:"type"`
	ImageURL        string    `json:"image_url,omitempty" firestore:"imageUrl"`
	Location        *Location `json:"location,omitempty" firestore:"location,omitempty"`
	ClientMessageID string    `json:"client_message_id,omitempty" firestore:"clientMessageId"`
	IsRead          bool      `json:"is_read" firestore:"isRead"`
	ReadAt          time.Time `json:"read_at,omitempty" firestore:"readAt"`
	Status          string    `json:"status" firestore:"status"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
}

// Preview is the text shown as a chat's last-message summary.
func (m *Message) Preview() string {
	if m.Type == MessageTypeText {
		return m.Content
	}
	return "Sent a " + m.Type
}
