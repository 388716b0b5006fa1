package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryHistory records one ad-hoc execution attempt. Only the query text is
// stored, never the connection string it ran against.
type QueryHistory struct {
	ID              uuid.UUID `json:"id"`
	ConnectionID    uuid.UUID `json:"connection_id"`
	QueryText       string    `json:"query_text"`
	Success         bool      `json:"success"`
	ExecutionTimeMs int       `json:"execution_time_ms"`
	ExecutedAt      time.Time `json:"executed_at"`
}

func (q *QueryHistory) Prepare() {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
}
