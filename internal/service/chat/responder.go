package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
)

// DefaultPlaceholderDelay is the simulated latency of the placeholder reply.
const DefaultPlaceholderDelay = 800 * time.Millisecond

// Request carries everything a responder may use to answer the latest turn.
// Transcript ends with the user message that carries Query.
type Request struct {
	SessionID  string
	Variant    Variant
	Transcript []chat.Message
	Query      string
}

// Responder produces the assistant reply for a submitted question.
// Implementations should return once ctx is done; the widget stops waiting
// for them either way.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, req Request) (string, error)

// Respond calls f.
func (f ResponderFunc) Respond(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// PlaceholderResponder answers every question with a canned acknowledgement
// after a fixed delay. No inference happens.
type PlaceholderResponder struct {
	Delay time.Duration
}

// NewPlaceholderResponder returns a placeholder responder. A negative delay
// falls back to DefaultPlaceholderDelay.
func NewPlaceholderResponder(delay time.Duration) *PlaceholderResponder {
	if delay < 0 {
		delay = DefaultPlaceholderDelay
	}
	return &PlaceholderResponder{Delay: delay}
}

// Respond waits for the configured delay and echoes the question back in the
// wording of the request's variant.
func (p *PlaceholderResponder) Respond(ctx context.Context, req Request) (string, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return req.Variant.PlaceholderReply(req.Query), nil
}

// Greeting is the assistant message pre-seeded by the section variant of the widget.
func Greeting(name string) string {
	return fmt.Sprintf("Hi! I'm an AI assistant that can answer questions about %s's professional background. Feel free to ask about skills, experience, education, or anything from the resume!", name)
}
