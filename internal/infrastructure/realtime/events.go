package realtime

import "encoding/json"

// Event is the wire envelope for every websocket frame, inbound and outbound.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	// EventJoin is the client handshake that binds the connection to a user room.
	EventJoin = "join"

	// EventSendMessage asks the server to relay a chat message to another user.
	EventSendMessage = "sendMessage"
	// EventReceiveMessage is the relayed chat message delivered to the recipient.
	EventReceiveMessage = "receiveMessage"

	EventSendNotification    = "sendNotification"
	EventReceiveNotification = "receiveNotification"
)

// targetedData is the part of a relay payload the hub needs to route it.
type targetedData struct {
	To string `json:"to"`
}

func NewEvent(eventType string, data interface{}) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}

	return Event{Type: eventType, Data: raw}, nil
}
