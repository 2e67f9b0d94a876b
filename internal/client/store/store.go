// Package store is the client's durable credential store: the active session
// token and the registry of locally simulated users, kept in a SQLite file
// that belongs to one client profile.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tripplanner/internal/dbx"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

// Keys of the metadata table.
const (
	TokenKey = "token"
	UsersKey = "mock_users"
)

type CredentialStore struct {
	db     *sql.DB
	logger logging.Logger
}

// New wraps an already migrated database.
func New(db *sql.DB, logger logging.Logger) *CredentialStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CredentialStore{db: db, logger: logger}
}

func (s *CredentialStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// GetToken returns the stored session token; ok is false when there is none.
func (s *CredentialStore) GetToken(ctx context.Context) (string, bool, error) {
	token, ok, err := s.repo(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", false, fmt.Errorf("get token: %w", err)
	}
	if token == "" {
		return "", false, nil
	}
	return token, ok, nil
}

// SetToken overwrites the stored token with whatever it is given. An empty
// token reads back as absent.
func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	if err := s.repo(s.db).Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

// ClearToken removes the token. Clearing an absent token is a no-op.
func (s *CredentialStore) ClearToken(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// LoadUsers returns the simulated user registry in insertion order. A registry
// that was never written, or whose JSON cannot be decoded, reads as empty.
func (s *CredentialStore) LoadUsers(ctx context.Context) ([]models.UserRecord, error) {
	return s.loadUsers(ctx, s.repo(s.db))
}

func (s *CredentialStore) loadUsers(ctx context.Context, repo metadata.Repository) ([]models.UserRecord, error) {
	raw, ok, err := repo.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok || raw == "" {
		return []models.UserRecord{}, nil
	}

	var users []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.logger.Warn(ctx, "user registry is corrupt, treating as empty", "key", UsersKey, "error", err)
		return []models.UserRecord{}, nil
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

// SaveUsers replaces the whole registry.
func (s *CredentialStore) SaveUsers(ctx context.Context, users []models.UserRecord) error {
	return s.saveUsers(ctx, s.repo(s.db), users)
}

func (s *CredentialStore) saveUsers(ctx context.Context, repo metadata.Repository, users []models.UserRecord) error {
	if users == nil {
		users = []models.UserRecord{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := repo.Set(ctx, UsersKey, string(b)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// UpdateUsers loads the registry, hands it to fn and saves what fn returns,
// all in one transaction. When fn fails nothing is written.
func (s *CredentialStore) UpdateUsers(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		users, err := s.loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		updated, err := fn(users)
		if err != nil {
			return err
		}
		return s.saveUsers(ctx, repo, updated)
	})
}

// Close releases the underlying database.
func (s *CredentialStore) Close() error {
	return s.db.Close()
}
