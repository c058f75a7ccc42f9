package schema

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleStaff
}

type VolunteerStatus string

const (
	VolunteerAvailable VolunteerStatus = "Available"
	VolunteerActive    VolunteerStatus = "Active"
)

const (
	DefaultAvailability = "8am-8pm"

	// downtown Hamilton, used until a volunteer shares a position
	DefaultLatitude  = 43.2557
	DefaultLongitude = -79.8711
)

// VolunteerProfile holds the fields only accounts with RoleUser carry
type VolunteerProfile struct {
	Status       VolunteerStatus `json:"status"`
	Skills       []string        `json:"skills"`
	Resources    []string        `json:"resources"`
	Availability string          `json:"availability"`
	Latitude     float64         `json:"lat"`
	Longitude    float64         `json:"lng"`
}

// User is an account of the system. Role decides whether Volunteer is set:
// RoleUser accounts always have one, RoleStaff accounts never do.
type User struct {
	ID                string    `json:"id"`
	Phone             string    `json:"phone"`
	Name              string    `json:"name"`
	Password          string    `json:"-"`
	Role              Role      `json:"role"`
	ActiveMissions    []string  `json:"activeMissions"`
	CompletedMissions int       `json:"completedMissions"`
	CreatedAt         time.Time `json:"createdAt"`

	*VolunteerProfile
}

// NewUser builds an account for the role, attaching a default volunteer
// profile to RoleUser accounts
func NewUser(id, phone, name, password string, role Role, createdAt time.Time) User {
	u := User{
		ID:             id,
		Phone:          phone,
		Name:           name,
		Password:       password,
		Role:           role,
		ActiveMissions: []string{},
		CreatedAt:      createdAt,
	}

	if role == RoleUser {
		u.VolunteerProfile = &VolunteerProfile{
			Status:       VolunteerAvailable,
			Skills:       []string{},
			Resources:    []string{},
			Availability: DefaultAvailability,
			Latitude:     DefaultLatitude,
			Longitude:    DefaultLongitude,
		}
	}

	return u
}

// IsVolunteer reports whether the account can accept and fulfil requests
func (u User) IsVolunteer() bool {
	return u.Role == RoleUser && u.VolunteerProfile != nil
}

// HasMission reports whether requestID is in the active mission set
func (u User) HasMission(requestID string) bool {
	for _, id := range u.ActiveMissions {
		if id == requestID {
			return true
		}
	}
	return false
}

// AddMission puts requestID into the active set and marks the volunteer Active
func (u *User) AddMission(requestID string) {
	if !u.HasMission(requestID) {
		u.ActiveMissions = append(u.ActiveMissions, requestID)
	}
	if u.VolunteerProfile != nil {
		u.Status = VolunteerActive
	}
}

// FinishMission removes requestID from the active set and counts it as
// completed. The volunteer goes back to Available once nothing is left.
func (u *User) FinishMission(requestID string) {
	missions := make([]string, 0, len(u.ActiveMissions))
	for _, id := range u.ActiveMissions {
		if id != requestID {
			missions = append(missions, id)
		}
	}
	u.ActiveMissions = missions
	u.CompletedMissions++

	if u.VolunteerProfile != nil && len(u.ActiveMissions) == 0 {
		u.Status = VolunteerAvailable
	}
}

// Copy returns a deep copy of the account
func (u User) Copy() User {
	c := u
	c.ActiveMissions = append([]string{}, u.ActiveMissions...)
	if u.VolunteerProfile != nil {
		p := *u.VolunteerProfile
		p.Skills = append([]string{}, u.Skills...)
		p.Resources = append([]string{}, u.Resources...)
		c.VolunteerProfile = &p
	}
	return c
}

// SignupRequest is the payload for registering an account
type SignupRequest struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Verified bool   `json:"verified"`
}
