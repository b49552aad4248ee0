package memory

import (
	"sync"

	"asb-server/api/openai"
)

// SessionDAO keeps per-session chat histories in memory. Histories are
// capped at maxHistory messages with the initial system message always
// preserved at index 0. Sessions live for the process lifetime.
type SessionDAO struct {
	mu         sync.Mutex
	sessions   map[string][]openai.ChatMessage
	maxHistory int
}

// NewSessionDAO initializes a SessionDAO with the given history cap.
func NewSessionDAO(maxHistory int) *SessionDAO {
	return &SessionDAO{
		sessions:   make(map[string][]openai.ChatMessage),
		maxHistory: maxHistory,
	}
}

// InitIfAbsent seeds a new session with its system message. Existing
// sessions are left untouched.
func (dao *SessionDAO) InitIfAbsent(sessionID string, system openai.ChatMessage) {
	dao.mu.Lock()
	defer dao.mu.Unlock()
	if _, ok := dao.sessions[sessionID]; !ok {
		dao.sessions[sessionID] = []openai.ChatMessage{system}
	}
}

// Append adds messages to a session and trims the history to the cap,
// keeping the system message on top.
func (dao *SessionDAO) Append(sessionID string, msgs ...openai.ChatMessage) {
	dao.mu.Lock()
	defer dao.mu.Unlock()
	history := append(dao.sessions[sessionID], msgs...)
	if len(history) > dao.maxHistory+1 {
		trimmed := make([]openai.ChatMessage, 0, dao.maxHistory+1)
		trimmed = append(trimmed, history[0])
		trimmed = append(trimmed, history[len(history)-dao.maxHistory:]...)
		history = trimmed
	}
	dao.sessions[sessionID] = history
}

// History returns a copy of the session's message history.
func (dao *SessionDAO) History(sessionID string) []openai.ChatMessage {
	dao.mu.Lock()
	defer dao.mu.Unlock()
	history := dao.sessions[sessionID]
	out := make([]openai.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Len reports the current history length for a session.
func (dao *SessionDAO) Len(sessionID string) int {
	dao.mu.Lock()
	defer dao.mu.Unlock()
	return len(dao.sessions[sessionID])
}
