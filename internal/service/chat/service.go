package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
)

// Config tunes the widgets created by a Service.
type Config struct {
	// ResponseTimeout bounds each reply; zero disables the bound.
	ResponseTimeout time.Duration
	// Greeting, when set, is pre-seeded as the first assistant message.
	Greeting string
	// SessionTTL closes sessions idle for longer than this; zero keeps them forever.
	SessionTTL time.Duration
	// Variant picks the suggestions and placeholder wording; empty means hero.
	Variant Variant
}

type entry struct {
	session chat.Session
	widget  *Widget
}

// Service keeps one widget per page view in memory. Nothing outlives the process.
type Service struct {
	responder Responder
	cfg       Config

	mu       sync.RWMutex
	sessions map[string]entry
}

// NewService returns a Service whose widgets answer through responder.
func NewService(responder Responder, cfg Config) *Service {
	if cfg.Variant == "" {
		cfg.Variant = VariantHero
	}
	return &Service{
		responder: responder,
		cfg:       cfg,
		sessions:  make(map[string]entry),
	}
}

// Suggestions returns the prompts accepted by SelectSuggestion.
func (s *Service) Suggestions() []string {
	return s.cfg.Variant.Suggestions()
}

// CreateSession mounts a new widget.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	opts := []Option{
		WithResponseTimeout(s.cfg.ResponseTimeout),
		WithVariant(s.cfg.Variant),
	}
	if s.cfg.Greeting != "" {
		opts = append(opts, WithGreeting(s.cfg.Greeting))
	}

	s.mu.Lock()
	s.sessions[session.ID] = entry{session: session, widget: NewWidget(session.ID, s.responder, opts...)}
	s.mu.Unlock()

	log.Printf("[chat] created session=%s", session.ID)
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	return e.session, nil
}

// Widget returns the widget bound to sessionID and marks it active.
func (s *Service) Widget(_ context.Context, sessionID string) (*Widget, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	e.widget.Touch()
	return e.widget, nil
}

// Submit forwards text to the session's widget.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (chat.Message, error) {
	w, err := s.Widget(ctx, sessionID)
	if err != nil {
		return chat.Message{}, err
	}
	return w.Submit(text)
}

// SelectSuggestion forwards a one-click prompt to the session's widget.
func (s *Service) SelectSuggestion(ctx context.Context, sessionID, text string) (chat.Message, error) {
	w, err := s.Widget(ctx, sessionID)
	if err != nil {
		return chat.Message{}, err
	}
	return w.SelectSuggestion(text)
}

// LoadTranscript returns the messages of the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return e.widget.Transcript(), nil
}

// CloseSession tears the widget down and forgets the session.
func (s *Service) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.widget.Close()
	log.Printf("[chat] closed session=%s", sessionID)
	return nil
}

// SweepIdle closes every session idle since before now minus SessionTTL and
// returns how many were closed.
func (s *Service) SweepIdle(now time.Time) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}

	var expired []*Widget
	s.mu.Lock()
	for id, e := range s.sessions {
		if e.widget.Pending() {
			continue
		}
		if now.Sub(e.widget.LastActive()) > s.cfg.SessionTTL {
			expired = append(expired, e.widget)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, w := range expired {
		w.Close()
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done, then closes all
// remaining sessions.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return
		case now := <-ticker.C:
			if n := s.SweepIdle(now); n > 0 {
				log.Printf("[chat] expired %d idle sessions", n)
			}
		}
	}
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CloseAll tears down every live session.
func (s *Service) CloseAll() {
	s.mu.Lock()
	widgets := make([]*Widget, 0, len(s.sessions))
	for id, e := range s.sessions {
		widgets = append(widgets, e.widget)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, w := range widgets {
		w.Close()
	}
}

func (s *Service) lookup(sessionID string) (entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return entry{}, ErrSessionNotFound
	}
	return e, nil
}
