package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const sessionLocks = 64

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameUseCase applies one user action at a time per session id.
type GameUseCase struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	images      tictactoe.PopupImages

	locks [sessionLocks]sync.Mutex
}

func NewGameUseCase(logger *slog.Logger, sessionRepo sessionRepo, images tictactoe.PopupImages) *GameUseCase {
	return &GameUseCase{
		logger:      logger.With("component", "game_usecase"),
		sessionRepo: sessionRepo,
		images:      images,
	}
}

// View returns the current state of the session, starting a new game if
// the session does not exist yet.
func (that *GameUseCase) View(ctx context.Context, id string) (*tictactoe.GameView, error) {
	return that.apply(ctx, id, "View", nil)
}

func (that *GameUseCase) Play(ctx context.Context, id string, cell int) (*tictactoe.GameView, error) {
	return that.apply(ctx, id, "Play", func(session *entity.Session) error {
		return tictactoe.Play(session, cell)
	})
}

func (that *GameUseCase) JumpTo(ctx context.Context, id string, move int) (*tictactoe.GameView, error) {
	return that.apply(ctx, id, "JumpTo", func(session *entity.Session) error {
		return tictactoe.JumpTo(session, move)
	})
}

func (that *GameUseCase) ClosePopup(ctx context.Context, id string) (*tictactoe.GameView, error) {
	return that.apply(ctx, id, "ClosePopup", func(session *entity.Session) error {
		tictactoe.ClosePopup(session)
		return nil
	})
}

func (that *GameUseCase) SetPlayerLabel(ctx context.Context, id string, slot entity.Slot, raw string) (*tictactoe.GameView, error) {
	return that.apply(ctx, id, "SetPlayerLabel", func(session *entity.Session) error {
		return tictactoe.SetPlayerLabel(session, slot, raw)
	})
}

// NewGame drops the stored session and starts over with empty history and labels.
func (that *GameUseCase) NewGame(ctx context.Context, id string) (*tictactoe.GameView, error) {
	log := that.logger.With("method", "NewGame", "session_id", id)

	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	err := that.sessionRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		log.Error("failed to delete session", "error", err)
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	session := entity.NewSession(id)
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		log.Error("failed to save session", "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	view := tictactoe.NewGameView(session, that.images)

	return &view, nil
}

// Owners reports who filled each cell of the snapshot at move.
func (that *GameUseCase) Owners(ctx context.Context, id string, move int) ([entity.BoardCells]entity.Slot, error) {
	log := that.logger.With("method", "Owners", "session_id", id)

	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := that.load(ctx, id)
	if err != nil {
		log.Error("failed to load session", "error", err)
		return [entity.BoardCells]entity.Slot{}, err
	}

	owners, err := tictactoe.Owners(session, move)
	if err != nil {
		return owners, fmt.Errorf("failed to get owners: %w", err)
	}

	return owners, nil
}

func (that *GameUseCase) apply(
	ctx context.Context,
	id, method string,
	transition func(session *entity.Session) error,
) (*tictactoe.GameView, error) {
	log := that.logger.With("method", method, "session_id", id)

	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := that.load(ctx, id)
	if err != nil {
		log.Error("failed to load session", "error", err)
		return nil, err
	}

	if transition != nil {
		if err = transition(session); err != nil {
			log.Debug("action rejected", "error", err)
			return nil, err
		}
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		log.Error("failed to save session", "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Debug("session updated", "current_move", session.CurrentMove, "history", len(session.History))

	view := tictactoe.NewGameView(session, that.images)

	return &view, nil
}

func (that *GameUseCase) load(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return entity.NewSession(id), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameUseCase) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	return &that.locks[h.Sum32()%sessionLocks]
}
