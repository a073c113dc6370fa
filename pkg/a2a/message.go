package a2a

import "strings"

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

/*
Message represents all non‑artifact communication between client & agent.
*/
type Message struct {
	Role  string `json:"role"` // "user" or "agent"
	Parts []Part `json:"parts"`
}

func NewTextMessage(role string, text string) Message {
	return Message{
		Role: role,
		Parts: []Part{
			{Type: PartTypeText, Text: text},
		},
	}
}

// FirstText returns the text of the first text part, or empty when the
// message carries none.
func (msg *Message) FirstText() string {
	for _, part := range msg.Parts {
		if part.Type == PartTypeText {
			return part.Text
		}
	}
	return ""
}

func (msg *Message) String() string {
	var sb strings.Builder

	for _, part := range msg.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String()
}
