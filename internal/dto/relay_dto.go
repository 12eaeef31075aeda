package dto

// SendMessageRequest forwards a visitor message to the owner. SessionId is
// the opaque client-generated token correlating the eventual reply.
type SendMessageRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// GetRepliesResponse returns the pending reply, or null when none is
// waiting ("no reply yet" is a normal response, not an error).
type GetRepliesResponse struct {
	Reply *string `json:"reply"`
}

// WebhookAck is always returned with HTTP 200; Success false marks an
// internal failure without triggering platform-side retries.
type WebhookAck struct {
	Success bool `json:"success"`
}

// ReplyStoredMessage is the in-process fan-out payload published after the
// webhook stores a reply.
type ReplyStoredMessage struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
}
