package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const testTTL = time.Hour

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return mr, client
}

func playedSession(id string) *entity.Session {
	session := entity.NewSession(id)
	session.History = append(session.History, entity.Board{}.Place(4, "A"))
	session.CurrentMove = 1
	session.Labels = entity.Labels{First: "A"}
	session.Endgame = entity.Endgame{Winner: "A", PopupVisible: true, Slot: entity.FirstSlot}

	return session
}

func TestRedisSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredis(t)
	repo := NewRedisSessionRepository(client, testTTL)

	// Given: a session with one move
	session := playedSession("s1")

	// When: storing it
	err := repo.CreateOrUpdate(ctx, session)

	// Then: the key exists with the ttl applied
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:s1"))
	assert.Equal(t, testTTL, mr.TTL("session:s1"))
}

func TestRedisSessionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID_Success", func(t *testing.T) {
		_, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)
		session := playedSession("s1")
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: reading it back
		stored, err := repo.GetByID(ctx, "s1")

		// Then: the whole state round-trips
		require.NoError(t, err)
		assert.Equal(t, session, stored)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		_, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)

		stored, err := repo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, ErrSessionNotFound)
		assert.Nil(t, stored)
	})

	t.Run("GetByID_Expired", func(t *testing.T) {
		mr, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedSession("s1")))

		// When: the ttl passes
		mr.FastForward(testTTL + time.Second)

		// Then: the session is gone
		_, err := repo.GetByID(ctx, "s1")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		mr, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)
		require.NoError(t, mr.Set("session:s1", `{"id":"s1","history":[],"current_move":3}`))

		_, err := repo.GetByID(ctx, "s1")

		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("GetByID_InvalidJSON", func(t *testing.T) {
		mr, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)
		require.NoError(t, mr.Set("session:s1", "not json"))

		_, err := repo.GetByID(ctx, "s1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRedisSessionRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteByID_Success", func(t *testing.T) {
		_, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedSession("s1")))

		require.NoError(t, repo.DeleteByID(ctx, "s1"))

		_, err := repo.GetByID(ctx, "s1")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		_, client := newMiniredis(t)
		repo := NewRedisSessionRepository(client, testTTL)

		require.ErrorIs(t, repo.DeleteByID(ctx, "missing"), ErrSessionNotFound)
	})
}
