package chat

import "time"

// Session captures one page view of the chat widget.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
