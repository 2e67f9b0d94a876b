// Package repomanager picks the backend's storage: PostgreSQL when a DSN is
// configured, process memory otherwise.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/tripplanner/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Close() error
}

// New opens the repositories for dsn. An empty dsn yields memory storage.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	return OpenPostgres(ctx, dsn)
}
