package realtime

import (
	"encoding/json"
)

// server to client events
const (
	EventNewRequest      = "newRequest"
	EventRequestUpdated  = "requestUpdated"
	EventUserUpdated     = "userUpdated"
	EventUserRegistered  = "userRegistered"
	EventCheckIn         = "checkIn"
	EventNewMessage      = "newMessage"
	EventAlertForwarded  = "alertForwarded"
	EventSafeZoneUpdated = "safeZoneUpdated"
	EventMessageRead     = "messageRead"
)

// client to server events
const (
	EventAcceptRequest   = "acceptRequest"
	EventCompleteRequest = "completeRequest"
	EventSendMessage     = "sendMessage"
)

// Event is a single frame on the realtime channel, in either direction
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// NewEvent encodes payload as the data of a named event
func NewEvent(name string, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Data: data}, nil
}

// Decode unmarshals the event data into v
func (e Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

type AcceptRequest struct {
	RequestID     string `json:"requestId"`
	VolunteerID   string `json:"volunteerId"`
	VolunteerName string `json:"volunteerName"`
}

type CompleteRequest struct {
	RequestID   string `json:"requestId"`
	VolunteerID string `json:"volunteerId"`
}

// Broadcaster publishes the result of a mutation to every connected session
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// HandlerFunc receives the events a session sends to the server
type HandlerFunc func(s *Session, e Event)
