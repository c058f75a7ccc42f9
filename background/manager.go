package background

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/geoshield-inc/geoshield-api/store"
)

const DefaultSweepInterval = time.Minute

var log = logrus.WithField("prefix", "background")

// BackgroundManager is a struct for geoshield background jobs
type BackgroundManager struct {
	store store.GeoShieldCore

	sweepInterval time.Duration
	expired       tally.Counter

	mu      sync.Mutex
	running bool
}

func New(core store.GeoShieldCore, sweepInterval time.Duration, scope tally.Scope) *BackgroundManager {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	if scope == nil {
		scope = tally.NoopScope
	}

	return &BackgroundManager{
		store:         core,
		sweepInterval: sweepInterval,
		expired:       scope.SubScope("background").Counter("verifications_expired"),
	}
}

// Run executes the background jobs on schedule until ctx is done
func (m *BackgroundManager) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return errors.New("background worker has started")
	}
	m.running = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	log.WithField("interval", m.sweepInterval).Info("background worker started")

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("background worker stopped")
			return nil
		case <-ticker.C:
			m.ExpireVerifications()
		}
	}
}
