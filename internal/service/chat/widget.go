package chat

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
)

// DefaultResponseTimeout bounds how long a widget waits for its responder.
const DefaultResponseTimeout = 15 * time.Second

// State is the widget's position in its two-state machine.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingResponse State = "awaiting_response"
)

// EventType tags entries of a widget's event feed.
type EventType string

const (
	EventMessage EventType = "message"
	EventState   EventType = "state"
	EventClosed  EventType = "closed"
)

// Event is published to subscribers whenever the transcript or state changes.
type Event struct {
	Type    EventType     `json:"type"`
	State   State         `json:"state,omitempty"`
	Message *chat.Message `json:"message,omitempty"`
}

// Option customises a Widget.
type Option func(*Widget)

// WithGreeting pre-seeds the transcript with one assistant message.
func WithGreeting(text string) Option {
	return func(w *Widget) {
		w.greeting = strings.TrimSpace(text)
	}
}

// WithResponseTimeout bounds each responder call. Zero disables the bound.
func WithResponseTimeout(d time.Duration) Option {
	return func(w *Widget) {
		if d >= 0 {
			w.timeout = d
		}
	}
}

// WithVariant selects the widget flavour, its suggestions and placeholder wording.
func WithVariant(v Variant) Option {
	return func(w *Widget) {
		w.variant = v
		w.suggestions = v.Suggestions()
	}
}

// Widget owns one transcript and gates it so that at most one reply is in
// flight. All methods are safe for concurrent use.
type Widget struct {
	id          string
	responder   Responder
	timeout     time.Duration
	greeting    string
	variant     Variant
	suggestions []string

	// ctx lives as long as the widget; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	transcript  []chat.Message
	pending     bool
	idle        chan struct{}
	closed      bool
	lastActive  time.Time
	subscribers map[int]chan Event
	nextSubID   int
}

// NewWidget creates an idle widget identified by id.
func NewWidget(id string, responder Responder, opts ...Option) *Widget {
	ctx, cancel := context.WithCancel(context.Background())

	idle := make(chan struct{})
	close(idle)

	w := &Widget{
		id:          id,
		responder:   responder,
		timeout:     DefaultResponseTimeout,
		variant:     VariantHero,
		suggestions: VariantHero.Suggestions(),
		ctx:         ctx,
		cancel:      cancel,
		transcript:  make([]chat.Message, 0, 16),
		idle:        idle,
		lastActive:  time.Now().UTC(),
		subscribers: make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.greeting != "" {
		w.transcript = append(w.transcript, w.newMessage(chat.RoleAssistant, w.greeting))
	}
	return w
}

// ID returns the session identifier the widget belongs to.
func (w *Widget) ID() string {
	return w.id
}

// Suggestions returns the one-click prompts accepted by SelectSuggestion.
func (w *Widget) Suggestions() []string {
	return append([]string(nil), w.suggestions...)
}

// Submit appends a user message and starts the reply. Empty input, a pending
// reply or a closed widget reject the call without changing any state.
func (w *Widget) Submit(text string) (chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, ErrEmptyInput
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return chat.Message{}, ErrClosed
	}
	if w.pending {
		w.mu.Unlock()
		return chat.Message{}, ErrPending
	}

	msg := w.newMessage(chat.RoleUser, text)
	w.transcript = append(w.transcript, msg)
	w.pending = true
	w.idle = make(chan struct{})
	w.lastActive = msg.CreatedAt

	req := Request{
		SessionID:  w.id,
		Variant:    w.variant,
		Transcript: w.copyTranscriptLocked(),
		Query:      text,
	}

	w.publishLocked(Event{Type: EventMessage, Message: &msg})
	w.publishLocked(Event{Type: EventState, State: StateAwaitingResponse})
	w.mu.Unlock()

	go w.respond(req)
	return msg, nil
}

// SelectSuggestion submits one of the widget's predefined prompts.
func (w *Widget) SelectSuggestion(text string) (chat.Message, error) {
	if !containsSuggestion(w.suggestions, text) {
		return chat.Message{}, ErrUnknownSuggestion
	}
	return w.Submit(text)
}

func (w *Widget) respond(req Request) {
	ctx, cancel := w.ctx, context.CancelFunc(func() {})
	if w.timeout > 0 {
		ctx, cancel = context.WithTimeout(w.ctx, w.timeout)
	}
	defer cancel()

	raw, err := w.callResponder(ctx, req)
	content, err := classify(ctx, raw, err)
	if err != nil {
		if w.ctx.Err() != nil {
			log.Printf("[chat] dropping reply for closed session=%s", w.id)
			return
		}
		log.Printf("[chat] reply failed session=%s: %v", w.id, err)
		content = FallbackReply
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		log.Printf("[chat] dropping reply for closed session=%s", w.id)
		return
	}

	msg := w.newMessage(chat.RoleAssistant, content)
	w.transcript = append(w.transcript, msg)
	w.pending = false
	w.lastActive = msg.CreatedAt
	close(w.idle)

	w.publishLocked(Event{Type: EventMessage, Message: &msg})
	w.publishLocked(Event{Type: EventState, State: StateIdle})
}

type responderResult struct {
	text string
	err  error
}

// callResponder returns when the responder does or when ctx is done, whichever
// comes first. A responder panic is reported as ErrTransport.
func (w *Widget) callResponder(ctx context.Context, req Request) (string, error) {
	done := make(chan responderResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[chat] responder panic session=%s: %v\n%s", w.id, r, debug.Stack())
				done <- responderResult{err: fmt.Errorf("%w: responder panic: %v", ErrTransport, r)}
			}
		}()
		text, err := w.responder.Respond(ctx, req)
		done <- responderResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Transcript returns a copy of the messages in chronological order.
func (w *Widget) Transcript() []chat.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copyTranscriptLocked()
}

// Pending reports whether a reply is in flight.
func (w *Widget) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}

// State returns the current machine state.
func (w *Widget) State() State {
	if w.Pending() {
		return StateAwaitingResponse
	}
	return StateIdle
}

// Closed reports whether Close has been called.
func (w *Widget) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// LastActive returns when the transcript last changed or the widget was touched.
func (w *Widget) LastActive() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActive
}

// Touch marks the widget as in use without changing the transcript.
func (w *Widget) Touch() {
	w.mu.Lock()
	w.lastActive = time.Now().UTC()
	w.mu.Unlock()
}

// Wait blocks until no reply is pending, ctx is done, or the widget is closed.
func (w *Widget) Wait(ctx context.Context) error {
	w.mu.Lock()
	idle := w.idle
	w.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-idle:
	}

	if w.Closed() {
		return ErrClosed
	}
	return nil
}

// Subscribe returns a feed of widget events and a function that ends the
// subscription. Events are dropped for subscribers whose buffer is full. The
// feed is closed when the widget closes.
func (w *Widget) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		close(ch)
		return ch, func() {}
	}

	id := w.nextSubID
	w.nextSubID++
	w.subscribers[id] = ch

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subscribers[id]; ok {
			delete(w.subscribers, id)
			close(sub)
		}
	}
}

// Close tears the widget down. An in-flight reply is cancelled and never
// appended. Close is idempotent.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	w.cancel()

	if w.pending {
		w.pending = false
		close(w.idle)
	}

	w.publishLocked(Event{Type: EventClosed})
	for id, sub := range w.subscribers {
		delete(w.subscribers, id)
		close(sub)
	}
}

func (w *Widget) publishLocked(event Event) {
	for id, sub := range w.subscribers {
		select {
		case sub <- event:
		default:
			log.Printf("[chat] subscriber %d of session=%s is slow, dropping %s event", id, w.id, event.Type)
		}
	}
}

func (w *Widget) copyTranscriptLocked() []chat.Message {
	copied := make([]chat.Message, len(w.transcript))
	copy(copied, w.transcript)
	return copied
}

func (w *Widget) newMessage(role chat.Role, content string) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		SessionID: w.id,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
