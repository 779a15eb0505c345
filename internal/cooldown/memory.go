package cooldown

import "time"

// Memory is an in-process Store substituted for the on-disk file in
// tests. The zero value means "never suggested".
type Memory struct {
	Last time.Time
}

// InCooldown reports whether Record was called less than threshold ago.
func (m *Memory) InCooldown(threshold time.Duration) bool {
	return !m.Last.IsZero() && time.Since(m.Last) < threshold
}

// Record marks now as the latest suggestion time.
func (m *Memory) Record() {
	m.Last = time.Now()
}
