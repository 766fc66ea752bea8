package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dakotaradigan/resume-site/backend/internal/model/profile"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(profile.NewMemoryStore(profile.Seed())).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestGetProfile(t *testing.T) {
	resp := get(setupRouter(), "/profile")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got profile.Profile
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != profile.Seed().Name {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if len(got.Experience) != 4 {
		t.Fatalf("expected 4 experience entries, got %d", len(got.Experience))
	}
}

func TestListSkills(t *testing.T) {
	resp := get(setupRouter(), "/profile/skills/languages")

	var body struct {
		Skills []profile.Skill `json:"skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Skills) != 2 {
		t.Fatalf("expected 2 language skills, got %d", len(body.Skills))
	}

	resp = get(setupRouter(), "/profile/skills/databases")
	if resp.Body.String() == "" || resp.Code != http.StatusOK {
		t.Fatalf("expected empty list response, got %d", resp.Code)
	}
}

func TestShareLinks(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/share?url=https%3A%2F%2Fexample.com%2F")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Links []profile.ShareLink `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Links) != 4 || body.Links[0].Name != "LinkedIn" {
		t.Fatalf("unexpected links: %+v", body.Links)
	}

	for _, path := range []string{"/share", "/share?url=javascript%3Aalert(1)", "/share?url=%2Frelative"} {
		if resp := get(r, path); resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", path, resp.Code)
		}
	}
}
