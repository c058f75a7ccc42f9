package schema

import (
	"time"
)

type RequestType string

const (
	FoodWater  RequestType = "Food/Water"
	Medical    RequestType = "Medical"
	Shelter    RequestType = "Shelter"
	Evacuation RequestType = "Evacuation"
	OtherNeed  RequestType = "Other"
)

var RequestTypes = []RequestType{FoodWater, Medical, Shelter, Evacuation, OtherNeed}

// Valid reports whether t is one of the known request types
func (t RequestType) Valid() bool {
	for _, v := range RequestTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
	UrgencyUrgent Urgency = "Urgent"
)

var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent}

func (u Urgency) Valid() bool {
	for _, v := range Urgencies {
		if v == u {
			return true
		}
	}
	return false
}

type RequestStatus string

const (
	HelpPending   RequestStatus = "Pending"
	HelpAssigned  RequestStatus = "Assigned"
	HelpFulfilled RequestStatus = "Fulfilled"
)

// rank orders the statuses of the request lifecycle. Unknown statuses rank -1.
func (s RequestStatus) rank() int {
	switch s {
	case HelpPending:
		return 0
	case HelpAssigned:
		return 1
	case HelpFulfilled:
		return 2
	}
	return -1
}

func (s RequestStatus) Valid() bool {
	return s.rank() >= 0
}

// CanMoveTo reports whether a request in status s may be moved to next.
// Staying in the same status is allowed, going back is not.
func (s RequestStatus) CanMoveTo(next RequestStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// HelpRequest is a survivor's request for help
type HelpRequest struct {
	ID                    string        `json:"id"`
	Type                  RequestType   `json:"type"`
	Urgency               Urgency       `json:"urgency"`
	PeopleCount           int           `json:"peopleCount"`
	Description           string        `json:"description"`
	Latitude              float64       `json:"lat"`
	Longitude             float64       `json:"lng"`
	Status                RequestStatus `json:"status"`
	SurvivorID            string        `json:"survivorId,omitempty"`
	SurvivorName          string        `json:"survivorName,omitempty"`
	SurvivorPhone         string        `json:"survivorPhone,omitempty"`
	AssignedVolunteerID   string        `json:"assignedVolunteerId,omitempty"`
	AssignedVolunteerName string        `json:"assignedVolunteerName,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	CompletedAt           *time.Time    `json:"completedAt,omitempty"`
}

// NewHelpRequest carries the fields a survivor submits for a new request
type NewHelpRequest struct {
	Type        RequestType `json:"type"`
	Urgency     Urgency     `json:"urgency"`
	PeopleCount int         `json:"peopleCount"`
	Description string      `json:"description"`
	Latitude    float64     `json:"lat"`
	Longitude   float64     `json:"lng"`
	UserID      string      `json:"userId"`
}

// HelpRequestPatch is a partial update of a help request. Nil fields are left untouched.
type HelpRequestPatch struct {
	Type                  *RequestType   `json:"type"`
	Urgency               *Urgency       `json:"urgency"`
	PeopleCount           *int           `json:"peopleCount"`
	Description           *string        `json:"description"`
	Latitude              *float64       `json:"lat"`
	Longitude             *float64       `json:"lng"`
	Status                *RequestStatus `json:"status"`
	AssignedVolunteerID   *string        `json:"assignedVolunteerId"`
	AssignedVolunteerName *string        `json:"assignedVolunteerName"`
}

// Apply merges the patch into r. The caller validates the patch first.
func (p HelpRequestPatch) Apply(r *HelpRequest) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Urgency != nil {
		r.Urgency = *p.Urgency
	}
	if p.PeopleCount != nil {
		r.PeopleCount = *p.PeopleCount
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Latitude != nil {
		r.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		r.Longitude = *p.Longitude
	}
	if p.AssignedVolunteerID != nil {
		r.AssignedVolunteerID = *p.AssignedVolunteerID
	}
	if p.AssignedVolunteerName != nil {
		r.AssignedVolunteerName = *p.AssignedVolunteerName
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// Active reports whether the request still needs work
func (r HelpRequest) Active() bool {
	return r.Status != HelpFulfilled
}
