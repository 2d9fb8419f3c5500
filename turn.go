// Package mrm is the domain model for the Narrator's Console, a terminal
// chat client for OpenAI-compatible completion APIs.
package mrm

import "time"

// Turn is one unit of conversation: the system persona, a user message, or
// an assistant reply. Turns are immutable once appended to a Session.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// UserTurn creates a user turn stamped with the current time.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// AssistantTurn creates an assistant turn stamped with the current time.
func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content, Timestamp: time.Now()}
}
