package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sqlconsole/internal/models"
	"sqlconsole/internal/repositories"
	"sqlconsole/internal/sqlexec"
)

const (
	maxNameLength             = 255
	maxConnectionStringLength = 1024
)

type ConnectionService struct {
	connRepo     *repositories.ConnectionRepository
	probeTimeout time.Duration
}

func NewConnectionService(connRepo *repositories.ConnectionRepository, probeTimeout time.Duration) *ConnectionService {
	return &ConnectionService{
		connRepo:     connRepo,
		probeTimeout: probeTimeout,
	}
}

func (s *ConnectionService) List() ([]models.Connection, error) {
	return s.connRepo.List()
}

func (s *ConnectionService) Create(name, connectionString string) (*models.Connection, error) {
	name, connectionString, err := sanitize(name, connectionString)
	if err != nil {
		return nil, err
	}

	existing, err := s.connRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	conn := &models.Connection{
		Name:             name,
		ConnectionString: connectionString,
	}

	// The unique constraint on connections.name backstops the FindByName
	// check under concurrent creates.
	if err := s.connRepo.Create(conn); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return conn, nil
}

func (s *ConnectionService) Update(id uuid.UUID, name, connectionString string) (*models.Connection, error) {
	name, connectionString, err := sanitize(name, connectionString)
	if err != nil {
		return nil, err
	}

	current, err := s.connRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	// Renaming to a name held by a different profile conflicts; keeping the
	// profile's own name does not.
	existing, err := s.connRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrDuplicateName
	}

	updated, err := s.connRepo.Update(id, name, connectionString)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

func (s *ConnectionService) Delete(id uuid.UUID) error {
	deleted, err := s.connRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// TestConnection probes a candidate connection string without persisting
// anything. The returned error is a *sqlexec.ExecutionError on failure.
func (s *ConnectionService) TestConnection(ctx context.Context, connectionString string) error {
	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	return sqlexec.Probe(ctx, strings.TrimSpace(connectionString))
}

func sanitize(name, connectionString string) (string, string, error) {
	name = strings.TrimSpace(name)
	connectionString = strings.TrimSpace(connectionString)

	if name == "" || connectionString == "" {
		return "", "", ErrInvalidInput
	}
	if len(name) > maxNameLength || len(connectionString) > maxConnectionStringLength {
		return "", "", ErrInvalidInput
	}

	return name, connectionString, nil
}
