package storage

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stovefree/stove-engine-go/internal/game"
)

// testPool connects to the database named by TEST_DATABASE_URL, skipping the
// test when none is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestReplayStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewReplayStore(testPool(t))
	require.NoError(t, store.EnsureSchema(ctx))

	replay := game.NewReplay("store-test-game")
	replay.RecordFrame(game.ReplayFrame{
		Turn:     1,
		Checksum: "abc",
		Records: []game.HistoryRecord{
			{Kind: game.HistoryTagChange, EntityID: 1, Tag: game.TagDamage, Value: 2},
		},
	})
	t.Cleanup(func() { _ = store.Delete(ctx, replay.GameID) })

	require.NoError(t, store.Save(ctx, replay))

	loaded, err := store.Load(ctx, replay.GameID)
	require.NoError(t, err)
	assert.Equal(t, replay.GameID, loaded.GameID)
	require.Equal(t, 1, loaded.Size())
	assert.Equal(t, replay.Frames[0].Records, loaded.Frames[0].Records)

	// Saving again replaces the archived copy.
	replay.RecordFrame(game.ReplayFrame{Turn: 2, Checksum: "def"})
	require.NoError(t, store.Save(ctx, replay))
	loaded, err = store.Load(ctx, replay.GameID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Size())
}

func TestReplayStoreLoadMissing(t *testing.T) {
	ctx := context.Background()
	store := NewReplayStore(testPool(t))
	require.NoError(t, store.EnsureSchema(ctx))

	_, err := store.Load(ctx, "no-such-game")
	assert.ErrorIs(t, err, ErrReplayNotFound)
}
