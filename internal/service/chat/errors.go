package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyInput        = errors.New("message text is required")
	ErrPending           = errors.New("a response is already pending")
	ErrClosed            = errors.New("chat widget is closed")
	ErrUnknownSuggestion = errors.New("unknown suggestion")

	// Responder failures. They never reach the caller of Submit; each one is
	// turned into a single FallbackReply message.
	ErrTimeout       = errors.New("responder timed out")
	ErrTransport     = errors.New("responder unreachable")
	ErrEmptyResponse = errors.New("responder returned no text")
)

// FallbackReply is appended in place of an answer when the responder fails.
const FallbackReply = "Sorry, I couldn't answer that right now. Please try again in a moment, or scroll down to explore my skills, experience, and education below!"

// classify normalises a responder result into usable text or one of
// ErrTimeout, ErrTransport and ErrEmptyResponse.
func classify(ctx context.Context, text string, err error) (string, error) {
	switch {
	case err == nil:
		text = strings.TrimSpace(text)
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrTransport), errors.Is(err, ErrEmptyResponse):
		return "", err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "", fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
}
