package handler

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dakotaradigan/resume-site/backend/internal/handler/chat"
	"github.com/dakotaradigan/resume-site/backend/internal/handler/profile"
	"github.com/dakotaradigan/resume-site/backend/internal/handler/stream"
	middlewarePkg "github.com/dakotaradigan/resume-site/backend/internal/middleware"
	profileModel "github.com/dakotaradigan/resume-site/backend/internal/model/profile"
	chatService "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
	"github.com/dakotaradigan/resume-site/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. When staticDir is set the
// built frontend is served from it for every non-API path.
func NewRouter(profiles profileModel.Store, chatSvc *chatService.Service, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	profileHandler := profile.New(profiles)
	chatHandler := chat.New(chatSvc)
	wsHandler := chat.NewWebSocketHandler(chatSvc)
	streamHandler := stream.New(chatSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]any{
				"status":   "ok",
				"sessions": chatSvc.Len(),
			})
		})

		profileHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		streamHandler.RegisterRoutes(api)
		wsHandler.RegisterWebSocketRoutes(api)
	})

	if staticDir != "" {
		r.Handle("/*", spaHandler(staticDir))
	}

	return r
}

// spaHandler serves files from dir and falls back to index.html so
// client-side routes and section anchors resolve.
func spaHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := http.Dir(dir).Open(r.URL.Path)
		if err != nil {
			if os.IsNotExist(err) {
				http.ServeFile(w, r, dir+"/index.html")
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		f.Close()
		files.ServeHTTP(w, r)
	})
}
