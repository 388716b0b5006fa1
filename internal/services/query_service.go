package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"sqlconsole/internal/models"
	"sqlconsole/internal/repositories"
	"sqlconsole/internal/sqlexec"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type QueryService struct {
	connRepo     *repositories.ConnectionRepository
	historyRepo  *repositories.QueryHistoryRepository
	queryTimeout time.Duration
}

func NewQueryService(connRepo *repositories.ConnectionRepository, historyRepo *repositories.QueryHistoryRepository, queryTimeout time.Duration) *QueryService {
	return &QueryService{
		connRepo:     connRepo,
		historyRepo:  historyRepo,
		queryTimeout: queryTimeout,
	}
}

// Execute looks up the profile and runs the query against it. The profile's
// connection string is only borrowed for the duration of this call.
func (s *QueryService) Execute(ctx context.Context, connectionID uuid.UUID, query string) (*sqlexec.Result, error) {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrNotFound
	}

	execCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	started := time.Now()
	result, execErr := sqlexec.Execute(execCtx, conn.ConnectionString, query)
	s.recordHistory(conn.ID, query, execErr == nil, time.Since(started))

	if execErr != nil {
		return nil, execErr
	}
	return result, nil
}

func (s *QueryService) History(limit int) ([]models.QueryHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.historyRepo.ListRecent(limit)
}

// recordHistory is best effort: a failed insert must not fail the execution
// response the user is waiting on.
func (s *QueryService) recordHistory(connectionID uuid.UUID, query string, success bool, took time.Duration) {
	entry := &models.QueryHistory{
		ConnectionID:    connectionID,
		QueryText:       query,
		Success:         success,
		ExecutionTimeMs: int(took.Milliseconds()),
	}
	if err := s.historyRepo.Create(entry); err != nil {
		log.Printf("failed to record query history: %v", err)
	}
}
