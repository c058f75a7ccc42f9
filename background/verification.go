package background

// ExpireVerifications is a background job to drop verification codes that
// were never used before their expiry
func (m *BackgroundManager) ExpireVerifications() int {
	n := m.store.ExpireVerifications()
	if n > 0 {
		m.expired.Inc(int64(n))
		log.WithField("count", n).Debug("expired verification codes removed")
	}
	return n
}
