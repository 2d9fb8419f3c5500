package mrm

import "time"

// Session is the append-only turn history for one process run. The persona
// occupies index 0 for the session's whole lifetime; every later turn is a
// user message or an assistant reply, in insertion order. Nothing is ever
// truncated or summarized — the full history is resent on each request, and
// context-length limits are the API server's problem.
type Session struct {
	turns []Turn
}

// NewSession creates a session whose first turn is the system persona.
func NewSession(persona string) *Session {
	return &Session{
		turns: []Turn{{Role: RoleSystem, Content: persona, Timestamp: time.Now()}},
	}
}

// Append adds a turn to the end of the history. It never fails and never
// reorders existing turns.
func (s *Session) Append(t Turn) {
	s.turns = append(s.turns, t)
}

// Len returns the number of turns, including the persona turn.
func (s *Session) Len() int {
	return len(s.turns)
}

// Turns returns a copy of the full history, persona first.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Payload returns the ordered turn sequence to send to the completion API.
// The persona turn is always first. The returned slice is a copy; mutating
// it cannot alter the session.
func (s *Session) Payload() []Turn {
	return s.Turns()
}

// Last returns the most recent turn. The second return is false only for a
// zero-value Session, which has no persona turn.
func (s *Session) Last() (Turn, bool) {
	if len(s.turns) == 0 {
		return Turn{}, false
	}
	return s.turns[len(s.turns)-1], true
}
