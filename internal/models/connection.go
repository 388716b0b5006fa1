package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Connection is a stored, named database connection profile. The connection
// string is a credential-bearing DSN; it is returned to the owning client on
// the API but never written anywhere except the connections table.
type Connection struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ConnectionString string    `json:"connection_string"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Connection) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = strings.TrimSpace(c.Name)
	c.ConnectionString = strings.TrimSpace(c.ConnectionString)
}
