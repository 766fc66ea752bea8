package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
	chatservice "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
)

func newService(cfg chatservice.Config) *chatservice.Service {
	return chatservice.NewService(chatservice.NewPlaceholderResponder(time.Millisecond), cfg)
}

func TestServiceGetSession(t *testing.T) {
	svc := newService(chatservice.Config{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := newService(chatservice.Config{})

	if _, err := svc.GetSession(context.Background(), "missing"); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServiceSubmitAndLoadTranscript(t *testing.T) {
	svc := newService(chatservice.Config{})
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	if _, err := svc.Submit(ctx, session.ID, "Tell me about your experience"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	w, err := svc.Widget(ctx, session.ID)
	if err != nil {
		t.Fatalf("Widget err: %v", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := w.Wait(waitCtx); err != nil {
		t.Fatalf("Wait err: %v", err)
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(transcript))
	}
	if transcript[1].Role != chat.RoleAssistant {
		t.Fatalf("expected assistant reply, got %s", transcript[1].Role)
	}
}

func TestServiceGreetingIsSeeded(t *testing.T) {
	svc := newService(chatservice.Config{Greeting: "Hi!"})
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 1 || transcript[0].Content != "Hi!" {
		t.Fatalf("unexpected transcript: %+v", transcript)
	}
}

func TestServiceSelectSuggestionUsesConfiguredVariant(t *testing.T) {
	svc := newService(chatservice.Config{Variant: chatservice.VariantSection})
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	if _, err := svc.SelectSuggestion(ctx, session.ID, chatservice.HeroSuggestions[0]); !errors.Is(err, chatservice.ErrUnknownSuggestion) {
		t.Fatalf("expected ErrUnknownSuggestion, got %v", err)
	}
	if _, err := svc.SelectSuggestion(ctx, session.ID, chatservice.SectionSuggestions[0]); err != nil {
		t.Fatalf("SelectSuggestion err: %v", err)
	}
}

func TestServiceCloseSession(t *testing.T) {
	svc := newService(chatservice.Config{})
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	w, _ := svc.Widget(ctx, session.ID)

	if err := svc.CloseSession(ctx, session.ID); err != nil {
		t.Fatalf("CloseSession err: %v", err)
	}
	if !w.Closed() {
		t.Fatal("expected widget to be closed")
	}
	if _, err := svc.GetSession(ctx, session.ID); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after close, got %v", err)
	}
	if err := svc.CloseSession(ctx, session.ID); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second close, got %v", err)
	}
}

func TestServiceSweepIdle(t *testing.T) {
	svc := newService(chatservice.Config{SessionTTL: time.Minute})
	ctx := context.Background()

	stale, _ := svc.CreateSession(ctx)
	staleWidget, _ := svc.Widget(ctx, stale.ID)

	if n := svc.SweepIdle(time.Now()); n != 0 {
		t.Fatalf("expected nothing swept yet, got %d", n)
	}
	if n := svc.SweepIdle(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if !staleWidget.Closed() {
		t.Fatal("expected swept widget to be closed")
	}
	if svc.Len() != 0 {
		t.Fatalf("expected no sessions left, got %d", svc.Len())
	}
}

func TestServiceSweepDisabledWithoutTTL(t *testing.T) {
	svc := newService(chatservice.Config{})
	svc.CreateSession(context.Background())

	if n := svc.SweepIdle(time.Now().Add(24 * time.Hour)); n != 0 {
		t.Fatalf("expected no sweep without TTL, got %d", n)
	}
}

func TestServiceRunClosesSessionsOnShutdown(t *testing.T) {
	svc := newService(chatservice.Config{})
	session, _ := svc.CreateSession(context.Background())
	w, _ := svc.Widget(context.Background(), session.ID)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()
	<-done

	if !w.Closed() {
		t.Fatal("expected widget to be closed on shutdown")
	}
	if svc.Len() != 0 {
		t.Fatalf("expected no sessions left, got %d", svc.Len())
	}
}
