package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type VerificationTestSuite struct {
	StoreTestSuite
}

func (s *VerificationTestSuite) TestSendAndVerify() {
	v, err := s.store.SendCode("905-555-0101")
	s.NoError(err)
	s.Len(v.Code, 6)
	s.Equal(s.clock.Add(DefaultVerificationTTL), v.ExpiresAt)

	s.NoError(s.store.VerifyCode("905-555-0101", v.Code))

	// single use
	s.Equal(ErrVerificationNotFound, s.store.VerifyCode("905-555-0101", v.Code))
}

func (s *VerificationTestSuite) TestLatestCodeWins() {
	first, err := s.store.SendCode("905-555-0101")
	s.NoError(err)
	second, err := s.store.SendCode("905-555-0101")
	s.NoError(err)
	s.NotEqual(first.Code, second.Code)

	s.Equal(ErrVerificationMismatch, s.store.VerifyCode("905-555-0101", first.Code))
	s.NoError(s.store.VerifyCode("905-555-0101", second.Code))
}

func (s *VerificationTestSuite) TestMismatchKeepsCode() {
	v, _ := s.store.SendCode("905-555-0101")

	s.Equal(ErrVerificationMismatch, s.store.VerifyCode("905-555-0101", "000000"))
	s.NoError(s.store.VerifyCode("905-555-0101", v.Code))
}

func (s *VerificationTestSuite) TestExpiredCodeIsDeleted() {
	v, _ := s.store.SendCode("905-555-0101")

	s.advance(DefaultVerificationTTL + time.Second)
	s.Equal(ErrVerificationExpired, s.store.VerifyCode("905-555-0101", v.Code))
	s.Equal(ErrVerificationNotFound, s.store.VerifyCode("905-555-0101", v.Code))
}

func (s *VerificationTestSuite) TestMissingFields() {
	_, err := s.store.SendCode("")
	s.Equal(ErrPhoneRequired, err)

	s.Equal(ErrMissingCode, s.store.VerifyCode("905-555-0101", ""))
}

func (s *VerificationTestSuite) TestExpireVerifications() {
	s.store.SendCode("905-555-0101")
	s.advance(5 * time.Minute)
	s.store.SendCode("905-555-0102")

	s.advance(6 * time.Minute)
	s.Equal(1, s.store.ExpireVerifications())
	s.Equal(0, s.store.ExpireVerifications())

	s.Equal(ErrVerificationNotFound, s.store.VerifyCode("905-555-0101", "100000"))
	s.NoError(s.store.VerifyCode("905-555-0102", "100001"))
}

func TestVerificationTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationTestSuite))
}
