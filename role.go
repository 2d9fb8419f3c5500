package mrm

// Role identifies the speaker of a conversation turn. The values are the
// wire names used by OpenAI-compatible chat completion APIs.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
