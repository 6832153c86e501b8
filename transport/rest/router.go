package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the game pages and actions.
func NewRouter(logger *slog.Logger, game gameUseCase, renderer boardRenderer) http.Handler {
	h := &handlers{
		logger:   logger.With("component", "rest"),
		game:     game,
		renderer: renderer,
		tpl:      loadTemplates(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.PingHandler)
	r.Get("/", h.Index)
	r.Post("/cells/{cell}", h.Play)
	r.Post("/popup/close", h.ClosePopup)
	r.Post("/game/new", h.NewGame)
	r.Post("/players/{slot}", h.SetPlayerLabel)
	r.Route("/history/{move}", func(r chi.Router) {
		r.Post("/jump", h.JumpTo)
		r.Get("/board.png", h.BoardImage)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				"request_id", middleware.GetReqID(r.Context()),
				"http_method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
