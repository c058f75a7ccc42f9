package store

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/geoshield-inc/geoshield-api/schema"
)

type AccountTestSuite struct {
	StoreTestSuite
}

func (s *AccountTestSuite) TestSignup() {
	u := s.signup("905-555-0101", "alice", schema.RoleUser)
	s.Equal("user1", u.ID)
	s.Equal(schema.RoleUser, u.Role)
	s.Require().NotNil(u.VolunteerProfile)
	s.Equal(schema.VolunteerAvailable, u.Status)

	staff := s.signup("905-555-0102", "carol", schema.RoleStaff)
	s.Nil(staff.VolunteerProfile)

	s.Len(s.store.ListUsers(), 2)
}

func (s *AccountTestSuite) TestSignupRejectsDuplicates() {
	s.signup("905-555-0101", "alice", schema.RoleUser)

	_, err := s.store.Signup(schema.SignupRequest{
		Phone: "905-555-0101", Name: "alicia", Password: "x", Role: schema.RoleUser, Verified: true,
	})
	s.Equal(ErrPhoneTaken, err)

	_, err = s.store.Signup(schema.SignupRequest{
		Phone: "905-555-0199", Name: "alice", Password: "x", Role: schema.RoleStaff, Verified: true,
	})
	s.Equal(ErrNameTaken, err)

	s.Len(s.store.ListUsers(), 1)
}

func (s *AccountTestSuite) TestSignupValidation() {
	_, err := s.store.Signup(schema.SignupRequest{Phone: "905-555-0101", Name: "alice", Role: schema.RoleUser, Verified: true})
	s.Equal(ErrMissingSignupFields, err)

	_, err = s.store.Signup(schema.SignupRequest{Phone: "905-555-0101", Name: "alice", Password: "x", Role: schema.RoleUser})
	s.Equal(ErrPhoneNotVerified, err)

	_, err = s.store.Signup(schema.SignupRequest{Phone: "905-555-0101", Name: "alice", Password: "x", Role: "admin", Verified: true})
	s.Equal(ErrInvalidRole, err)

	s.Empty(s.store.ListUsers())
}

func (s *AccountTestSuite) TestLogin() {
	s.signup("905-555-0101", "alice", schema.RoleUser)

	u, err := s.store.Login("alice", "pass-alice")
	s.NoError(err)
	s.Equal("alice", u.Name)

	_, err = s.store.Login("alice", "wrong")
	s.Equal(ErrInvalidCredentials, err)

	_, err = s.store.Login("bob", "pass-bob")
	s.Equal(ErrInvalidCredentials, err)

	_, err = s.store.Login("", "")
	s.Equal(ErrMissingCredentials, err)
}

func (s *AccountTestSuite) TestGetUser() {
	u := s.signup("905-555-0101", "alice", schema.RoleUser)

	found, err := s.store.GetUser(u.ID)
	s.NoError(err)
	s.Equal(u.Phone, found.Phone)

	_, err = s.store.GetUser("user404")
	s.Equal(ErrUserNotFound, err)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}
