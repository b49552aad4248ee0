package memory

import "sync"

// AUTO_TIME_OVERRIDE clears the override, reverting to the per-request hint.
const AUTO_TIME_OVERRIDE = "Auto"

// AdminState holds the process-wide simulated time-of-day override set from
// the admin dashboard and read by every chat turn.
type AdminState struct {
	mu           sync.RWMutex
	timeOverride string
}

// NewAdminState initializes an AdminState with no override.
func NewAdminState() *AdminState {
	return &AdminState{}
}

// SetTimeOverride sets the override. "Auto" or an empty value clears it.
func (s *AdminState) SetTimeOverride(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == AUTO_TIME_OVERRIDE {
		s.timeOverride = ""
		return
	}
	s.timeOverride = value
}

// TimeOverride returns the current override, or "" when unset.
func (s *AdminState) TimeOverride() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeOverride
}
