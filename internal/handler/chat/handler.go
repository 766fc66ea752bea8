package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
	chatService "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
	"github.com/dakotaradigan/resume-site/backend/pkg/utils"
)

// Handler exposes the chat widget over JSON.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates a chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/suggestions", h.handleListSuggestions)
	r.Post("/sessions", h.handleCreateSession)
	r.Get("/sessions/{sessionID}", h.handleGetSession)
	r.Delete("/sessions/{sessionID}", h.handleCloseSession)
	r.Get("/sessions/{sessionID}/transcript", h.handleGetTranscript)
	r.Post("/sessions/{sessionID}/messages", h.handleSubmit)
	r.Post("/sessions/{sessionID}/suggestions", h.handleSelectSuggestion)
}

type sessionView struct {
	Session     chat.Session      `json:"session"`
	State       chatService.State `json:"state"`
	Transcript  []chat.Message    `json:"transcript"`
	Suggestions []string          `json:"suggestions"`
}

type submitResult struct {
	Message chat.Message      `json:"message"`
	State   chatService.State `json:"state"`
}

type textPayload struct {
	Text string `json:"text"`
}

func (h *Handler) handleListSuggestions(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"suggestions": h.chatSvc.Suggestions()})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	view, err := h.view(r, session.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r, chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	transcript, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]chat.Message{"transcript": transcript})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	h.handleText(w, r, h.chatSvc.Submit)
}

func (h *Handler) handleSelectSuggestion(w http.ResponseWriter, r *http.Request) {
	h.handleText(w, r, h.chatSvc.SelectSuggestion)
}

type submitFunc func(ctx context.Context, sessionID, text string) (chat.Message, error)

func (h *Handler) handleText(w http.ResponseWriter, r *http.Request, submit submitFunc) {
	var payload textPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	msg, err := submit(r.Context(), sessionID, payload.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, submitResult{
		Message: msg,
		State:   chatService.StateAwaitingResponse,
	})
}

func (h *Handler) view(r *http.Request, sessionID string) (sessionView, error) {
	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		return sessionView{}, err
	}
	widget, err := h.chatSvc.Widget(r.Context(), sessionID)
	if err != nil {
		return sessionView{}, err
	}

	return sessionView{
		Session:     session,
		State:       widget.State(),
		Transcript:  widget.Transcript(),
		Suggestions: widget.Suggestions(),
	}, nil
}

// StatusFor maps chat service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatService.ErrEmptyInput), errors.Is(err, chatService.ErrUnknownSuggestion):
		return http.StatusBadRequest
	case errors.Is(err, chatService.ErrPending):
		return http.StatusConflict
	case errors.Is(err, chatService.ErrClosed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	utils.RespondError(w, StatusFor(err), err.Error())
}
