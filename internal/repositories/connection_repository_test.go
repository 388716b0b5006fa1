package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"sqlconsole/internal/database"
	"sqlconsole/internal/models"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("repotest"),
		postgres.WithUsername("repo"),
		postgres.WithPassword("repo"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))
	return pool
}

func TestConnectionRepository(t *testing.T) {
	pool := setupPool(t)
	repo := NewConnectionRepository(pool)

	first := &models.Connection{Name: "analytics", ConnectionString: "postgres://a:a@db-a:5432/analytics"}
	require.NoError(t, repo.Create(first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// created_at is the list ordering key; keep the two inserts apart.
	time.Sleep(20 * time.Millisecond)

	second := &models.Connection{Name: "billing", ConnectionString: "postgres://b:b@db-b:5432/billing"}
	require.NoError(t, repo.Create(second))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(first.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "analytics", found.Name)

		missing, err := repo.FindByID(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := repo.FindByName("billing")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, second.ID, found.ID)

		missing, err := repo.FindByName("nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list newest first", func(t *testing.T) {
		connections, err := repo.List()
		require.NoError(t, err)
		require.Len(t, connections, 2)
		assert.Equal(t, "billing", connections[0].Name)
		assert.Equal(t, "analytics", connections[1].Name)
	})

	t.Run("unique name backstop", func(t *testing.T) {
		dup := &models.Connection{Name: "analytics", ConnectionString: "postgres://x:x@db-x:5432/x"}
		err := repo.Create(dup)
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23505", pgErr.Code)
	})

	t.Run("update replaces both fields", func(t *testing.T) {
		updated, err := repo.Update(first.ID, "analytics-eu", "postgres://a:a@db-eu:5432/analytics")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "analytics-eu", updated.Name)
		assert.Equal(t, "postgres://a:a@db-eu:5432/analytics", updated.ConnectionString)
		assert.WithinDuration(t, first.CreatedAt, updated.CreatedAt, time.Second)

		missing, err := repo.Update(uuid.New(), "ghost", "postgres://g:g@g:5432/g")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		deleted, err := repo.Delete(second.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(second.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestQueryHistoryRepository(t *testing.T) {
	pool := setupPool(t)
	connRepo := NewConnectionRepository(pool)
	historyRepo := NewQueryHistoryRepository(pool)

	conn := &models.Connection{Name: "target", ConnectionString: "postgres://t:t@db-t:5432/t"}
	require.NoError(t, connRepo.Create(conn))

	for i, query := range []string{"SELECT 1", "SELECT 2", "SELEC 3"} {
		entry := &models.QueryHistory{
			ConnectionID:    conn.ID,
			QueryText:       query,
			Success:         i < 2,
			ExecutionTimeMs: i,
		}
		require.NoError(t, historyRepo.Create(entry))
		time.Sleep(20 * time.Millisecond)
	}

	entries, err := historyRepo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "SELEC 3", entries[0].QueryText)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "SELECT 2", entries[1].QueryText)
}
