package profile

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dakotaradigan/resume-site/backend/internal/model/profile"
	"github.com/dakotaradigan/resume-site/backend/pkg/utils"
)

// Handler serves the résumé content.
type Handler struct {
	profiles profile.Store
}

// New creates a profile handler.
func New(profiles profile.Store) *Handler {
	return &Handler{profiles: profiles}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleGetProfile)
	r.Get("/profile/skills/{category}", h.handleListSkills)
	r.Get("/share", h.handleShareLinks)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.Get())
}

func (h *Handler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	category := profile.SkillCategory(chi.URLParam(r, "category"))
	skills := h.profiles.SkillsByCategory(category)
	if skills == nil {
		skills = []profile.Skill{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"category": category, "skills": skills})
}

func (h *Handler) handleShareLinks(w http.ResponseWriter, r *http.Request) {
	pageURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if pageURL == "" {
		utils.RespondError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		utils.RespondError(w, http.StatusBadRequest, "url must be an absolute http(s) URL")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"links": h.profiles.Get().ShareLinks(pageURL)})
}
