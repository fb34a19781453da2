package entity

import "time"

const (
	NotificationNewInterest      = "new_interest"
	NotificationNewMessage       = "new_message"
	NotificationNewProduct       = "new_product"
	NotificationPriceDrop        = "price_drop"
	NotificationProductAvailable = "product_available"
	NotificationChatReply        = "chat_reply"
	NotificationOrderUpdate      = "order_update"
	NotificationSystem           = "system"
)

var notificationTypes = map[string]bool{
	NotificationNewInterest:      true,
	NotificationNewMessage:       true,
	NotificationNewProduct:       true,
	NotificationPriceDrop:        true,
	NotificationProductAvailable: true,
	NotificationChatReply:        true,
	NotificationOrderUpdate:      true,
	NotificationSystem:           true,
}

// ValidNotificationType reports whether t belongs to the closed type set.
func ValidNotificationType(t string) bool {
	return notificationTypes[t]
}

// RelatedKind identifies what kind of entity a notification points at.
type RelatedKind string

const (
	RelatedKindProducePost RelatedKind = "produce_post"
	RelatedKindChat        RelatedKind = "chat"
	RelatedKindMessage     RelatedKind = "message"
	RelatedKindUser        RelatedKind = "user"
)

func (k RelatedKind) Valid() bool {
	switch k {
	case RelatedKindProducePost, RelatedKindChat, RelatedKindMessage, RelatedKindUser:
		return true
	}
	return false
}

// RelatedRef is a typed reference to the entity that triggered a notification.
// Construct via the Related* helpers so Kind is always a member of the closed set.
type RelatedRef struct {
	Kind RelatedKind `json:"kind" firestore:"kind"`
	ID   string      `json:"id" firestore:"id"`
}

func RelatedProducePost(id string) *RelatedRef {
	return &RelatedRef{Kind: RelatedKindProducePost, ID: id}
}

func RelatedChat(id string) *RelatedRef {
	return &RelatedRef{Kind: RelatedKindChat, ID: id}
}

func RelatedMessage(id string) *RelatedRef {
	return &RelatedRef{Kind: RelatedKindMessage, ID: id}
}

func RelatedUser(id string) *RelatedRef {
	return &RelatedRef{Kind: RelatedKindUser, ID: id}
}

// Notification is a per-user event record. ReadAt is set exactly when IsRead
// flips to true.
type Notification struct {
	ID        string      `json:"id" firestore:"id"`
	UserID    string      `json:"user_id" firestore:"userId"`
	Type      string      `json:"type" firestore:"type"`
	Title     string      `json:"title" firestore:"title"`
	Message   string      `json:"message" firestore:"message"`
	RelatedTo *RelatedRef `json:"related_to,omitempty" firestore:"relatedTo,omitempty"`
	IsRead    bool        `json:"is_read" firestore:"isRead"`
	ReadAt    time.Time   `json:"read_at,omitempty" firestore:"readAt"`
	ActionURL string      `json:"action_url,omitempty" firestore:"actionUrl"`
	Icon      string      `json:"icon,omitempty" firestore:"icon"`
	CreatedAt time.Time   `json:"created_at" firestore:"createdAt"`
}

// MarkRead flips the read flag and stamps ReadAt.
func (n *Notification) MarkRead(at time.Time) {
	n.IsRead = true
	n.ReadAt = at
}
