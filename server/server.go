// Package server exposes the Chatternet document over JSON HTTP. It owns
// framing, status codes and routing only; every consistency rule lives in
// the social package.
package server

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/Chatternet1/Chatternet/social"
)

type Config struct {
	// StaticDir, when set, serves the demo site at the root path.
	StaticDir string
}

type api struct {
	store  *social.Store
	logger *slog.Logger
}

// New builds the full handler chain: routes, permissive CORS and request
// logging.
func New(store *social.Store, logger *slog.Logger, cfg Config) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{store: store, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", a.health)

	mux.HandleFunc("POST /api/signup", a.signup)
	mux.HandleFunc("POST /api/login", a.login)
	mux.HandleFunc("GET /api/users", a.listUsers)
	mux.HandleFunc("GET /api/users/{id}", a.getUser)
	mux.HandleFunc("PUT /api/users/{id}", a.updateUser)

	mux.HandleFunc("GET /api/messages", a.listMessages)
	mux.HandleFunc("POST /api/messages", a.createMessage)
	mux.HandleFunc("GET /api/threads/{userId}", a.threads)

	mux.HandleFunc("GET /api/events", a.listEvents)
	mux.HandleFunc("POST /api/events", a.createEvent)
	mux.HandleFunc("GET /api/events/{id}", a.getEvent)
	mux.HandleFunc("PUT /api/events/{id}", a.updateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", a.deleteEvent)

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	handler := cors.AllowAll().Handler(mux)
	return requestLogger(logger, handler)
}
