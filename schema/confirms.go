package schema

import "time"

// Verification is the code currently outstanding for a phone number
type Verification struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the code is past its expiry at now
func (v Verification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
