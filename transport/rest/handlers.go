package rest

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const sessionCookie = "game_session"

type gameUseCase interface {
	View(ctx context.Context, id string) (*tictactoe.GameView, error)
	Play(ctx context.Context, id string, cell int) (*tictactoe.GameView, error)
	JumpTo(ctx context.Context, id string, move int) (*tictactoe.GameView, error)
	ClosePopup(ctx context.Context, id string) (*tictactoe.GameView, error)
	SetPlayerLabel(ctx context.Context, id string, slot entity.Slot, raw string) (*tictactoe.GameView, error)
	NewGame(ctx context.Context, id string) (*tictactoe.GameView, error)
	Owners(ctx context.Context, id string, move int) ([entity.BoardCells]entity.Slot, error)
}

type boardRenderer interface {
	RenderPNG(ctx context.Context, owners [entity.BoardCells]entity.Slot) ([]byte, error)
}

type handlers struct {
	logger *slog.Logger

	game     gameUseCase
	renderer boardRenderer
	tpl      *template.Template
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) Index(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Index")

	sessionID := ensureSessionCookie(w, r)

	view, err := that.game.View(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.render(w, "page", view)
}

func (that *handlers) Play(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		http.Error(w, "Invalid cell", http.StatusBadRequest)
		return
	}

	sessionID := ensureSessionCookie(w, r)
	view, err := that.game.Play(r.Context(), sessionID, cell)
	that.respond(w, r, "Play", view, err)
}

func (that *handlers) JumpTo(w http.ResponseWriter, r *http.Request) {
	move, err := strconv.Atoi(chi.URLParam(r, "move"))
	if err != nil {
		http.Error(w, "Invalid move", http.StatusBadRequest)
		return
	}

	sessionID := ensureSessionCookie(w, r)
	view, err := that.game.JumpTo(r.Context(), sessionID, move)
	that.respond(w, r, "JumpTo", view, err)
}

func (that *handlers) ClosePopup(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSessionCookie(w, r)
	view, err := that.game.ClosePopup(r.Context(), sessionID)
	that.respond(w, r, "ClosePopup", view, err)
}

func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSessionCookie(w, r)
	view, err := that.game.NewGame(r.Context(), sessionID)
	that.respond(w, r, "NewGame", view, err)
}

func (that *handlers) SetPlayerLabel(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		http.Error(w, "Invalid player", http.StatusBadRequest)
		return
	}

	if err = r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	sessionID := ensureSessionCookie(w, r)
	view, err := that.game.SetPlayerLabel(r.Context(), sessionID, entity.Slot(slot), r.PostForm.Get("label"))
	that.respond(w, r, "SetPlayerLabel", view, err)
}

func (that *handlers) BoardImage(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "BoardImage")

	move, err := strconv.Atoi(chi.URLParam(r, "move"))
	if err != nil {
		http.Error(w, "Invalid move", http.StatusBadRequest)
		return
	}

	sessionID := ensureSessionCookie(w, r)
	owners, err := that.game.Owners(r.Context(), sessionID, move)
	if errors.Is(err, apperror.ErrInvalidMove) {
		http.NotFound(w, r)
		return
	}

	if err != nil {
		log.Error("failed to get board owners", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data, err := that.renderer.RenderPNG(r.Context(), owners)
	if err != nil {
		log.Error("failed to render board image", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// respond answers htmx requests with the game fragment and plain form
// posts with a redirect to the page.
func (that *handlers) respond(w http.ResponseWriter, r *http.Request, method string, view *tictactoe.GameView, err error) {
	log := that.logger.With("method", method)

	switch {
	case isBadRequest(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Error("failed to update game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	that.render(w, "game", view)
}

func (that *handlers) render(w http.ResponseWriter, name string, view *tictactoe.GameView) {
	body, err := renderTemplate(that.tpl, name, view)
	if err != nil {
		that.logger.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func isBadRequest(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrInvalidMove) ||
		errors.Is(err, apperror.ErrInvalidSlot)
}

// ensureSessionCookie returns the session id of the browser, issuing a new
// one when the cookie is missing or malformed.
func ensureSessionCookie(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err = uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
