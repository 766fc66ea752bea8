package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dakotaradigan/resume-site/backend/internal/config"
	"github.com/dakotaradigan/resume-site/backend/internal/handler"
	"github.com/dakotaradigan/resume-site/backend/internal/model/profile"
	"github.com/dakotaradigan/resume-site/backend/internal/service/ai"
	"github.com/dakotaradigan/resume-site/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	profileStore := profile.NewMemoryStore(profile.Seed())
	responder := newResponder(ctx, cfg, profileStore)

	variant, err := chat.ParseVariant(cfg.Chat.Variant)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chatCfg := chat.Config{
		ResponseTimeout: cfg.Chat.ResponseTimeout,
		SessionTTL:      cfg.Chat.SessionTTL,
		Variant:         variant,
	}
	if cfg.Chat.GreetingEnabled {
		chatCfg.Greeting = chat.Greeting(profileStore.Get().Name)
	}
	chatService := chat.NewService(responder, chatCfg)

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		chatService.Run(ctx, cfg.Chat.SweepInterval)
	}()

	router := handler.NewRouter(profileStore, chatService, cfg.Server.StaticDir)

	startServer(ctx, cfg.Server, router)
	<-sweepDone
}

// newResponder prefers the Ark-backed responder and falls back to the
// placeholder reply when credentials are missing or the model fails to load.
func newResponder(ctx context.Context, cfg *config.Config, profiles profile.Store) chat.Responder {
	if !cfg.AI.Enabled() {
		log.Println("Ark credentials not configured, using placeholder replies")
		return chat.NewPlaceholderResponder(cfg.Chat.ResponseDelay)
	}

	aiService, err := ai.NewService(ctx, profiles, cfg.AI)
	if err != nil {
		log.Printf("warning: failed to initialize AI service: %v", err)
		log.Println("continuing with placeholder replies")
		return chat.NewPlaceholderResponder(cfg.Chat.ResponseDelay)
	}

	log.Printf("AI service initialized successfully (model=%s, stream=%v)", cfg.AI.Model, aiService.StreamingEnabled())
	return aiService
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("resume backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
