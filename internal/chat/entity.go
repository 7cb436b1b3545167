package chat

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type GroundingLink struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type Message struct {
	Role          Role            `json:"role"`
	Text          string          `json:"text"`
	Timestamp     time.Time       `json:"timestamp"`
	GroundingURLs []GroundingLink `json:"groundingUrls,omitempty"`
}

// Chunk is one increment of a streamed reply. Grounding is nil when the increment carries
// no citation metadata; otherwise it is the full current citation set.
type Chunk struct {
	Text      string
	Grounding []GroundingLink
}

type EventType string

const (
	EventPending  EventType = "pending"
	EventDelta    EventType = "delta"
	EventDone     EventType = "done"
	EventFallback EventType = "fallback"
)

type Event struct {
	Type    EventType `json:"type"`
	Delta   string    `json:"delta,omitempty"`
	Message Message   `json:"message"`
}

type SendRequest struct {
	Text      string `json:"text"`
	UseSearch bool   `json:"useSearch"`
}
