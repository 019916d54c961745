// Package repomanager opens the database, applies migrations and hands out
// repositories to the rest of the server.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userdesk/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Ping(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
}
