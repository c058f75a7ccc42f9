package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/geoshield-inc/geoshield-api/schema"
)

const (
	storeLogPrefix = "store"

	DefaultVerificationTTL = 10 * time.Minute
)

var log = logrus.WithField("prefix", storeLogPrefix)

// GeoShieldCore is the main datastore of geoshield
type GeoShieldCore interface {
	Ping() error

	// Help requests
	ListRequests() []schema.HelpRequest
	GetRequest(id string) (*schema.HelpRequest, error)
	CreateRequest(params schema.NewHelpRequest) (*schema.HelpRequest, error)
	UpdateRequest(id string, patch schema.HelpRequestPatch) (*schema.HelpRequest, *schema.User, error)
	AcceptRequest(requestID, volunteerID, volunteerName string) (*schema.HelpRequest, *schema.User, error)
	CompleteRequest(requestID, volunteerID string) (*schema.HelpRequest, *schema.User, error)

	// Accounts
	ListUsers() []schema.User
	GetUser(id string) (*schema.User, error)
	Signup(params schema.SignupRequest) (*schema.User, error)
	Login(name, password string) (*schema.User, error)

	// Safe zones
	ListSafeZones() []schema.SafeZone
	UpdateSafeZone(id string, patch schema.SafeZonePatch) (*schema.SafeZone, error)

	// Messages
	SendMessage(params schema.NewMessage) (*schema.Message, error)
	SendAlert(params schema.NewMessage) ([]schema.Message, error)
	ForwardAlert(params schema.ForwardRequest) ([]schema.ForwardedAlert, error)
	ListMessages(userID string) []schema.Message
	MarkMessageRead(id string) (*schema.Message, error)

	// Check-ins
	CheckIn(userID, userName string, status schema.CheckInStatus) (*schema.CheckIn, error)

	// Phone verification
	SendCode(phone string) (*schema.Verification, error)
	VerifyCode(phone, code string) error
	ExpireVerifications() int

	Overview() schema.Overview
}

// MemoryStore is an in-process implementation of GeoShieldCore. All
// collections live for the lifetime of the process. Every operation holds
// mu for its whole duration and hands out copies, so callers never share
// state with the store.
type MemoryStore struct {
	mu sync.RWMutex

	requests      []schema.HelpRequest
	users         []schema.User
	safeZones     []schema.SafeZone
	messages      []schema.Message
	checkIns      []schema.CheckIn
	verifications map[string]schema.Verification

	verificationTTL time.Duration

	now     func() time.Time
	newID   func(prefix string) string
	newCode func() string
}

// NewMemoryStore returns a store seeded with the given safe zones. A zero
// ttl falls back to DefaultVerificationTTL.
func NewMemoryStore(safeZones []schema.SafeZone, ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultVerificationTTL
	}

	zones := make([]schema.SafeZone, 0, len(safeZones))
	for _, z := range safeZones {
		zones = append(zones, z.Copy())
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &MemoryStore{
		requests:        []schema.HelpRequest{},
		users:           []schema.User{},
		safeZones:       zones,
		messages:        []schema.Message{},
		checkIns:        []schema.CheckIn{},
		verifications:   map[string]schema.Verification{},
		verificationTTL: ttl,
		now:             time.Now,
		newID: func(prefix string) string {
			return prefix + "-" + uuid.New().String()
		},
		newCode: func() string {
			return fmt.Sprintf("%06d", 100000+rnd.Intn(900000))
		},
	}
}

// Ping is to check the storage health status
func (s *MemoryStore) Ping() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.verifications == nil {
		return fmt.Errorf("store is not initialized")
	}
	return nil
}
