package store

import (
	"github.com/geoshield-inc/geoshield-api/schema"
)

// ListRequests returns every help request in creation order
func (s *MemoryStore) ListRequests() []schema.HelpRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]schema.HelpRequest, 0, len(s.requests))
	for _, r := range s.requests {
		requests = append(requests, copyRequest(r))
	}
	return requests
}

// GetRequest returns the help request of a given id
func (s *MemoryStore) GetRequest(id string) (*schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.requestIndex(id)
	if i < 0 {
		return nil, ErrRequestNotFound
	}
	r := copyRequest(s.requests[i])
	return &r, nil
}

// CreateRequest creates a pending help request. The survivor's name and
// phone are filled in from the account of params.UserID when it exists.
func (s *MemoryStore) CreateRequest(params schema.NewHelpRequest) (*schema.HelpRequest, error) {
	if !params.Type.Valid() {
		return nil, ErrInvalidRequestType
	}
	if !params.Urgency.Valid() {
		return nil, ErrInvalidUrgency
	}
	if params.PeopleCount < 1 {
		return nil, ErrInvalidPeopleCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := schema.HelpRequest{
		ID:          s.newID("req"),
		Type:        params.Type,
		Urgency:     params.Urgency,
		PeopleCount: params.PeopleCount,
		Description: params.Description,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		Status:      schema.HelpPending,
		CreatedAt:   s.now().UTC(),
	}

	if params.UserID != "" {
		r.SurvivorID = params.UserID
		if i := s.userIndex(params.UserID); i >= 0 {
			r.SurvivorName = s.users[i].Name
			r.SurvivorPhone = s.users[i].Phone
		}
	}

	s.requests = append(s.requests, r)
	log.WithField("request", r.ID).Debug("help request created")

	return &r, nil
}

// UpdateRequest merges a patch into a help request. The status may only
// move forward and a request cannot leave Pending without a volunteer.
// A status change runs the same mission bookkeeping as accepting and
// completing; the touched volunteer account is returned, nil otherwise.
func (s *MemoryStore) UpdateRequest(id string, patch schema.HelpRequestPatch) (*schema.HelpRequest, *schema.User, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, nil, ErrInvalidRequestType
	}
	if patch.Urgency != nil && !patch.Urgency.Valid() {
		return nil, nil, ErrInvalidUrgency
	}
	if patch.PeopleCount != nil && *patch.PeopleCount < 1 {
		return nil, nil, ErrInvalidPeopleCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.requestIndex(id)
	if i < 0 {
		return nil, nil, ErrRequestNotFound
	}

	r := copyRequest(s.requests[i])
	previous := r.Status

	if patch.Status != nil && !previous.CanMoveTo(*patch.Status) {
		return nil, nil, ErrInvalidStatusTransition
	}
	if previous != schema.HelpPending && patch.AssignedVolunteerID != nil && *patch.AssignedVolunteerID != r.AssignedVolunteerID {
		return nil, nil, ErrVolunteerLocked
	}

	patch.Apply(&r)

	if r.Status != schema.HelpPending && r.AssignedVolunteerID == "" {
		return nil, nil, ErrVolunteerRequired
	}

	var volunteer *schema.User
	if previous == schema.HelpPending && r.Status != schema.HelpPending {
		volunteer = s.startMission(r.ID, r.AssignedVolunteerID)
	}
	if previous != schema.HelpFulfilled && r.Status == schema.HelpFulfilled {
		completedAt := s.now().UTC()
		r.CompletedAt = &completedAt
		if v := s.finishMission(r.ID, r.AssignedVolunteerID); v != nil {
			volunteer = v
		}
	}

	s.requests[i] = r
	log.WithField("request", r.ID).Debug("help request updated")

	result := copyRequest(r)
	return &result, volunteer, nil
}

// AcceptRequest assigns a pending request to a volunteer. The request is
// answered even when the volunteer account is unknown; the returned user is
// nil in that case.
func (s *MemoryStore) AcceptRequest(requestID, volunteerID, volunteerName string) (*schema.HelpRequest, *schema.User, error) {
	if volunteerID == "" {
		return nil, nil, ErrVolunteerRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.requestIndex(requestID)
	if i < 0 {
		return nil, nil, ErrRequestNotFound
	}
	if s.requests[i].Status != schema.HelpPending {
		return nil, nil, ErrInvalidStatusTransition
	}

	r := &s.requests[i]
	r.Status = schema.HelpAssigned
	r.AssignedVolunteerID = volunteerID
	r.AssignedVolunteerName = volunteerName

	volunteer := s.startMission(requestID, volunteerID)

	log.WithField("request", requestID).WithField("volunteer", volunteerID).Debug("help request accepted")

	result := copyRequest(*r)
	return &result, volunteer, nil
}

// CompleteRequest fulfils an assigned request and closes the mission of
// the assigned volunteer. volunteerID only identifies the caller; the
// mission is always credited to the volunteer holding it.
func (s *MemoryStore) CompleteRequest(requestID, volunteerID string) (*schema.HelpRequest, *schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.requestIndex(requestID)
	if i < 0 {
		return nil, nil, ErrRequestNotFound
	}
	if s.requests[i].Status != schema.HelpAssigned {
		return nil, nil, ErrInvalidStatusTransition
	}

	r := &s.requests[i]
	completedAt := s.now().UTC()
	r.Status = schema.HelpFulfilled
	r.CompletedAt = &completedAt

	if volunteerID != "" && volunteerID != r.AssignedVolunteerID {
		log.WithField("request", requestID).WithField("volunteer", volunteerID).Warn("completed by someone other than the assigned volunteer")
	}
	volunteer := s.finishMission(requestID, r.AssignedVolunteerID)

	log.WithField("request", requestID).WithField("volunteer", r.AssignedVolunteerID).Debug("help request fulfilled")

	result := copyRequest(*r)
	return &result, volunteer, nil
}

// startMission puts requestID into the active set of a volunteer. It
// returns a copy of the account, or nil when volunteerID is no volunteer.
func (s *MemoryStore) startMission(requestID, volunteerID string) *schema.User {
	j := s.volunteerIndex(volunteerID)
	if j < 0 {
		return nil
	}
	s.users[j].AddMission(requestID)
	v := s.users[j].Copy()
	return &v
}

func (s *MemoryStore) finishMission(requestID, volunteerID string) *schema.User {
	j := s.volunteerIndex(volunteerID)
	if j < 0 {
		return nil
	}
	s.users[j].FinishMission(requestID)
	v := s.users[j].Copy()
	return &v
}

func (s *MemoryStore) requestIndex(id string) int {
	for i, r := range s.requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func copyRequest(r schema.HelpRequest) schema.HelpRequest {
	c := r
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	return c
}
