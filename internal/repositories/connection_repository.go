package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sqlconsole/internal/models"
)

type ConnectionRepository struct {
	pool *pgxpool.Pool
}

func NewConnectionRepository(pool *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{pool: pool}
}

func (r *ConnectionRepository) List() ([]models.Connection, error) {
	ctx := context.Background()

	query := `SELECT id, name, connection_string, created_at
		FROM connections ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connections := make([]models.Connection, 0)
	for rows.Next() {
		var conn models.Connection
		if err := rows.Scan(&conn.ID, &conn.Name, &conn.ConnectionString, &conn.CreatedAt); err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}

	return connections, rows.Err()
}

func (r *ConnectionRepository) FindByID(id uuid.UUID) (*models.Connection, error) {
	ctx := context.Background()

	query := `SELECT id, name, connection_string, created_at
		FROM connections WHERE id = $1`

	var conn models.Connection
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&conn.ID,
		&conn.Name,
		&conn.ConnectionString,
		&conn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &conn, nil
}

func (r *ConnectionRepository) FindByName(name string) (*models.Connection, error) {
	ctx := context.Background()

	query := `SELECT id, name, connection_string, created_at
		FROM connections WHERE name = $1`

	var conn models.Connection
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&conn.ID,
		&conn.Name,
		&conn.ConnectionString,
		&conn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &conn, nil
}

func (r *ConnectionRepository) Create(conn *models.Connection) error {
	ctx := context.Background()

	conn.Prepare()

	query := `
		INSERT INTO connections (id, name, connection_string, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx, query, conn.ID, conn.Name, conn.ConnectionString, now)
	if err == nil {
		conn.CreatedAt = now
	}

	return err
}

// Update replaces name and connection string together. Returns (nil, nil)
// when no row matches the id.
func (r *ConnectionRepository) Update(id uuid.UUID, name, connectionString string) (*models.Connection, error) {
	ctx := context.Background()

	query := `
		UPDATE connections SET name = $2, connection_string = $3
		WHERE id = $1
		RETURNING id, name, connection_string, created_at
	`

	var conn models.Connection
	err := r.pool.QueryRow(ctx, query, id, name, connectionString).Scan(
		&conn.ID,
		&conn.Name,
		&conn.ConnectionString,
		&conn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &conn, nil
}

// Delete reports whether a row was removed. Deleting an absent id is not an
// error; the second call simply reports false.
func (r *ConnectionRepository) Delete(id uuid.UUID) (bool, error) {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
