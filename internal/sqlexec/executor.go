// Package sqlexec runs ad-hoc user SQL against arbitrary Postgres connection
// strings and normalizes the outcome into a JSON-safe tabular result.
package sqlexec

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEmptyQuery is returned before any connection is attempted.
var ErrEmptyQuery = errors.New("query cannot be empty")

// ExecutionError wraps any driver or connectivity failure. Detail is the
// server-reported message when one exists; raw driver errors never escape
// this package.
type ExecutionError struct {
	Detail string
	Err    error
}

func (e *ExecutionError) Error() string { return e.Detail }

func (e *ExecutionError) Unwrap() error { return e.Err }

func newExecutionError(err error) *ExecutionError {
	var detail string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Message != "" {
		detail = pgErr.Message
	} else if err != nil {
		detail = err.Error()
	}
	if detail == "" {
		detail = "database error"
	}
	return &ExecutionError{Detail: detail, Err: err}
}

// Result is the outcome of one execution. For row-returning queries Columns
// holds the ordered column names and Message is null; for affecting
// statements Columns and Rows are empty and Message describes the affected
// row count.
type Result struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
	Message  *string          `json:"message"`
}

// Execute opens a connection scoped to this single call, runs the statement
// exactly once inside an explicit transaction, and commits on success. No
// retries: ad-hoc SQL may have side effects.
func Execute(ctx context.Context, connString, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, newExecutionError(err)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, newExecutionError(err)
	}

	result, err := run(ctx, tx, query)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, newExecutionError(err)
	}

	return result, nil
}

func run(ctx context.Context, tx pgx.Tx, query string) (*Result, error) {
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, newExecutionError(err)
	}

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	serialized := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			rows.Close()
			return nil, newExecutionError(err)
		}
		serialized = append(serialized, SerializeRow(columns, values))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, newExecutionError(err)
	}

	// Column metadata present means a row-returning query, even with zero
	// rows. Its row count is the number of rows fetched, never the tag.
	if len(columns) > 0 {
		return &Result{
			Columns:  columns,
			Rows:     serialized,
			RowCount: len(serialized),
		}, nil
	}

	affected := rows.CommandTag().RowsAffected()
	if affected < 0 {
		affected = 0
	}
	message := fmt.Sprintf("Statement executed successfully (%d rows affected).", affected)
	return &Result{
		Columns:  []string{},
		Rows:     []map[string]any{},
		RowCount: int(affected),
		Message:  &message,
	}, nil
}

// Probe performs a minimal liveness check against a candidate connection
// string without persisting anything.
func Probe(ctx context.Context, connString string) error {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return newExecutionError(err)
	}
	defer conn.Close(ctx)

	var one int
	if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return newExecutionError(err)
	}

	return nil
}
