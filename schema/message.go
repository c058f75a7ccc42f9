package schema

import "time"

// AllUsers as an alert target fans the alert out to every volunteer account
const AllUsers = "all"

// Message is a note or alert from staff to a single user
type Message struct {
	ID          string    `json:"id"`
	FromStaffID string    `json:"fromStaffId"`
	ToUserID    string    `json:"toUserId"`
	Message     string    `json:"message"`
	RequestID   *string   `json:"requestId"`
	CreatedAt   time.Time `json:"createdAt"`
	Read        bool      `json:"read"`
}

// NewMessage is the payload for sending a message or an alert
type NewMessage struct {
	FromStaffID string `json:"fromStaffId"`
	ToUserID    string `json:"toUserId"`
	Message     string `json:"message"`
	RequestID   string `json:"requestId"`
}

// ForwardedAlert points a volunteer at a request that needs attention
type ForwardedAlert struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"requestId"`
	VolunteerID string    `json:"volunteerId"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
	Read        bool      `json:"read"`
}

// ForwardRequest is the payload for forwarding a request to volunteers
type ForwardRequest struct {
	RequestID    string   `json:"requestId"`
	VolunteerIDs []string `json:"volunteerIds"`
	Message      string   `json:"message"`
}
