package store

import "fmt"

var (
	ErrRequestNotFound         = fmt.Errorf("request not found")
	ErrInvalidRequestType      = fmt.Errorf("invalid request type")
	ErrInvalidUrgency          = fmt.Errorf("invalid urgency")
	ErrInvalidPeopleCount      = fmt.Errorf("people count must be at least 1")
	ErrInvalidStatusTransition = fmt.Errorf("request status cannot move backwards")
	ErrVolunteerRequired       = fmt.Errorf("an assigned request needs a volunteer")
	ErrVolunteerLocked         = fmt.Errorf("the volunteer of an assigned request cannot change")

	ErrUserNotFound        = fmt.Errorf("user not found")
	ErrMissingSignupFields = fmt.Errorf("phone, name, password, and role are required")
	ErrPhoneNotVerified    = fmt.Errorf("phone must be verified")
	ErrPhoneTaken          = fmt.Errorf("phone number already registered")
	ErrNameTaken           = fmt.Errorf("username already taken")
	ErrInvalidRole         = fmt.Errorf(`invalid role, must be "user" or "staff"`)
	ErrMissingCredentials  = fmt.Errorf("name and password are required")
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")

	ErrSafeZoneNotFound = fmt.Errorf("safe zone not found")

	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrEmptyMessage    = fmt.Errorf("message text is required")
	ErrNoRecipient     = fmt.Errorf("message recipient is required")
	ErrNoVolunteers    = fmt.Errorf("at least one volunteer is required")

	ErrInvalidCheckIn = fmt.Errorf(`check-in status must be "Safe" or "Unsafe"`)

	ErrPhoneRequired        = fmt.Errorf("phone is required")
	ErrMissingCode          = fmt.Errorf("phone and code are required")
	ErrVerificationNotFound = fmt.Errorf("no verification code found for this phone")
	ErrVerificationExpired  = fmt.Errorf("verification code expired")
	ErrVerificationMismatch = fmt.Errorf("invalid verification code")
)
