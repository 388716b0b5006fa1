package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sqlconsole/internal/models"
)

type QueryHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewQueryHistoryRepository(pool *pgxpool.Pool) *QueryHistoryRepository {
	return &QueryHistoryRepository{pool: pool}
}

func (r *QueryHistoryRepository) Create(entry *models.QueryHistory) error {
	ctx := context.Background()

	entry.Prepare()

	query := `
		INSERT INTO query_history (id, connection_id, query_text, success, execution_time_ms, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.ConnectionID,
		entry.QueryText,
		entry.Success,
		entry.ExecutionTimeMs,
		now,
	)
	if err == nil {
		entry.ExecutedAt = now
	}

	return err
}

func (r *QueryHistoryRepository) ListRecent(limit int) ([]models.QueryHistory, error) {
	ctx := context.Background()

	query := `SELECT id, connection_id, query_text, success, execution_time_ms, executed_at
		FROM query_history ORDER BY executed_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.QueryHistory, 0)
	for rows.Next() {
		var entry models.QueryHistory
		if err := rows.Scan(
			&entry.ID,
			&entry.ConnectionID,
			&entry.QueryText,
			&entry.Success,
			&entry.ExecutionTimeMs,
			&entry.ExecutedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
