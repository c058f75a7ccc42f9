package schema

import "time"

type CheckInStatus string

const (
	CheckInSafe   CheckInStatus = "Safe"
	CheckInUnsafe CheckInStatus = "Unsafe"
)

// CheckIn is a survivor reporting whether they are safe
type CheckIn struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	Status    CheckInStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}
