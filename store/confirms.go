package store

import (
	"github.com/geoshield-inc/geoshield-api/schema"
)

// SendCode issues a new six digit code for the phone. A code that is
// still pending for the same phone is replaced.
func (s *MemoryStore) SendCode(phone string) (*schema.Verification, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := schema.Verification{
		Phone:     phone,
		Code:      s.newCode(),
		ExpiresAt: s.now().Add(s.verificationTTL),
	}
	s.verifications[phone] = v

	log.WithField("phone", phone).Debug("verification code issued")

	return &v, nil
}

// VerifyCode consumes the pending code of a phone. An expired code is
// removed. A wrong code leaves the pending one in place.
func (s *MemoryStore) VerifyCode(phone, code string) error {
	if phone == "" || code == "" {
		return ErrMissingCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.verifications[phone]
	if !ok {
		return ErrVerificationNotFound
	}

	if v.Expired(s.now()) {
		delete(s.verifications, phone)
		return ErrVerificationExpired
	}

	if v.Code != code {
		return ErrVerificationMismatch
	}

	delete(s.verifications, phone)
	return nil
}

// ExpireVerifications drops every code past its expiry and returns how many were dropped
func (s *MemoryStore) ExpireVerifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expired := 0
	for phone, v := range s.verifications {
		if v.Expired(now) {
			delete(s.verifications, phone)
			expired++
		}
	}
	return expired
}
