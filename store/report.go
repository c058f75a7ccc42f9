package store

import (
	"github.com/geoshield-inc/geoshield-api/schema"
)

// SendMessage stores a message from staff to a single user
func (s *MemoryStore) SendMessage(params schema.NewMessage) (*schema.Message, error) {
	if params.Message == "" {
		return nil, ErrEmptyMessage
	}
	if params.ToUserID == "" {
		return nil, ErrNoRecipient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := schema.Message{
		ID:          s.newID("msg"),
		FromStaffID: params.FromStaffID,
		ToUserID:    params.ToUserID,
		Message:     params.Message,
		CreatedAt:   s.now().UTC(),
	}
	if params.RequestID != "" {
		requestID := params.RequestID
		m.RequestID = &requestID
	}

	s.messages = append(s.messages, m)
	return copyMessage(m), nil
}

// SendAlert stores an alert for one user, or for every volunteer when the
// target is empty or schema.AllUsers. Alerts of one fan-out share a batch
// id and derive their own ids from it.
func (s *MemoryStore) SendAlert(params schema.NewMessage) ([]schema.Message, error) {
	if params.Message == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipients := []string{params.ToUserID}
	if params.ToUserID == "" || params.ToUserID == schema.AllUsers {
		recipients = recipients[:0]
		for _, u := range s.users {
			if u.Role == schema.RoleUser {
				recipients = append(recipients, u.ID)
			}
		}
	}

	batch := s.newID("alert")
	now := s.now().UTC()

	alerts := make([]schema.Message, 0, len(recipients))
	for _, userID := range recipients {
		m := schema.Message{
			ID:          batch + "_" + userID,
			FromStaffID: params.FromStaffID,
			ToUserID:    userID,
			Message:     params.Message,
			CreatedAt:   now,
		}
		s.messages = append(s.messages, m)
		alerts = append(alerts, *copyMessage(m))
	}

	log.WithField("alerts", len(alerts)).Info("alert sent")

	return alerts, nil
}

// ForwardAlert builds one alert per volunteer pointing at a request.
// Forwarded alerts are delivered live only and never stored.
func (s *MemoryStore) ForwardAlert(params schema.ForwardRequest) ([]schema.ForwardedAlert, error) {
	if len(params.VolunteerIDs) == 0 {
		return nil, ErrNoVolunteers
	}
	if params.Message == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.requestIndex(params.RequestID) < 0 {
		return nil, ErrRequestNotFound
	}

	batch := s.newID("alert")
	now := s.now().UTC()

	alerts := make([]schema.ForwardedAlert, 0, len(params.VolunteerIDs))
	for _, volunteerID := range params.VolunteerIDs {
		alerts = append(alerts, schema.ForwardedAlert{
			ID:          batch + "_" + volunteerID,
			RequestID:   params.RequestID,
			VolunteerID: volunteerID,
			Message:     params.Message,
			CreatedAt:   now,
		})
	}
	return alerts, nil
}

// ListMessages returns every message addressed to userID
func (s *MemoryStore) ListMessages(userID string) []schema.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := []schema.Message{}
	for _, m := range s.messages {
		if m.ToUserID == userID {
			messages = append(messages, *copyMessage(m))
		}
	}
	return messages
}

// MarkMessageRead flags a message as read
func (s *MemoryStore) MarkMessageRead(id string) (*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			return copyMessage(s.messages[i]), nil
		}
	}
	return nil, ErrMessageNotFound
}

// CheckIn records whether a survivor is safe
func (s *MemoryStore) CheckIn(userID, userName string, status schema.CheckInStatus) (*schema.CheckIn, error) {
	if status != schema.CheckInSafe && status != schema.CheckInUnsafe {
		return nil, ErrInvalidCheckIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := schema.CheckIn{
		ID:        s.newID("check"),
		UserID:    userID,
		UserName:  userName,
		Status:    status,
		Timestamp: s.now().UTC(),
	}
	s.checkIns = append(s.checkIns, c)

	return &c, nil
}

func copyMessage(m schema.Message) *schema.Message {
	c := m
	if m.RequestID != nil {
		id := *m.RequestID
		c.RequestID = &id
	}
	return &c
}
