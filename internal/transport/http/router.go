package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"organelle-quiz/internal/app"
)

// NewRouter wires the websocket endpoint, question images and operational routes.
// Question images are referenced as IMGS/<file> and served from assetsDir.
func NewRouter(service *app.QuizService, ws *WSHandler, assetsDir string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ws", ws.ServeWS)
	r.Get("/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		controller, err := service.Session(chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(controller.Snapshot())
	})
	r.Handle("/IMGS/*", http.FileServer(http.Dir(assetsDir)))

	return r
}
