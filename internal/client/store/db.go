package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tripplanner/internal/client/migrations"
	"github.com/dmitrijs2005/tripplanner/internal/filex"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite file at dsn and brings its
// schema up to date. Plain paths get their parent directory created first.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*CredentialStore, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// One connection keeps ":memory:" databases and transactions on the same handle.
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db, logger), nil
}
