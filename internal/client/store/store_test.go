package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *CredentialStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestToken_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SetToken(ctx, "X"))
	tok, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "X", tok)

	require.NoError(t, s.SetToken(ctx, "X"), "idempotent")
	require.NoError(t, s.SetToken(ctx, "Y"))
	tok, _, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Y", tok)

	require.NoError(t, s.ClearToken(ctx))
	_, ok, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ClearToken(ctx), "clearing an absent token is a no-op")
}

func TestSetToken_EmptyOverwritesAndReadsAbsent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetToken(ctx, ""))

	token, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestLoadUsers_NeverInitialized(t *testing.T) {
	users, err := newStore(t).LoadUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUsers_SaveLoadKeepsOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	in := []models.UserRecord{
		{Email: "b@x.io", Password: "2"},
		{Email: "a@x.io", Password: "1"},
	}

	require.NoError(t, s.SaveUsers(ctx, in))
	out, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveUsers_Nil(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUsers(ctx, nil))
	raw, ok, err := s.repo(s.db).Get(ctx, UsersKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestLoadUsers_CorruptIsEmptyAndWarns(t *testing.T) {
	var buf bytes.Buffer
	s := newStore(t)
	s.logger = logging.NewTextLogger(&buf, "debug")
	ctx := context.Background()

	require.NoError(t, s.repo(s.db).Set(ctx, UsersKey, "{not json"))

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "key=mock_users")
}

func TestUpdateUsers_AppendsAtomically(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveUsers(ctx, []models.UserRecord{{Email: "a@x.io", Password: "1"}}))

	err := s.UpdateUsers(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		return append(users, models.UserRecord{Email: "b@x.io", Password: "2"}), nil
	})
	require.NoError(t, err)

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.io", "b@x.io"}, emails(users))
}

func TestUpdateUsers_FnErrorWritesNothing(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.UpdateUsers(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		return append(users, models.UserRecord{Email: "a@x.io"}), boom
	})
	require.ErrorIs(t, err, boom)

	_, ok, err := s.repo(s.db).Get(ctx, UsersKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_CreatesProfileDirAndPersists(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "profiles", "default", "planner.db")

	s, err := Open(ctx, dsn, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, "persisted"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	tok, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", tok)
}

func TestClosedStoreReturnsErrors(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close())

	_, _, err := s.GetToken(ctx)
	require.Error(t, err)
	_, err = s.LoadUsers(ctx)
	require.Error(t, err)
	require.Error(t, s.ClearToken(ctx))
}

func emails(users []models.UserRecord) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Email)
	}
	return out
}
