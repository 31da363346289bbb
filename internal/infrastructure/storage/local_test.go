package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"patient-portal/internal/domain/entity"
	"patient-portal/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadSession(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	user := entity.User{ID: uuid.New(), Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, local.SaveSession(user, "portal-abc"))

	loaded, tok, ok := local.LoadSession()
	require.True(t, ok)
	assert.Equal(t, user, loaded)
	assert.Equal(t, "portal-abc", tok)
}

func TestLoadSessionWithHalfPresentPair(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocal(dir)
	require.NoError(t, err)

	user := entity.User{ID: uuid.New(), Name: "John Doe"}
	require.NoError(t, local.SaveSession(user, "portal-abc"))
	require.NoError(t, os.Remove(filepath.Join(dir, "token")))

	_, _, ok := local.LoadSession()
	assert.False(t, ok, "a half-present pair reads as no session")
}

func TestLoadSessionWithCorruptIdentity(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocal(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user"), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("portal-abc"), 0o600))

	_, _, ok := local.LoadSession()
	assert.False(t, ok)
}

func TestSaveUserRewritesOnlyIdentitySlot(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	user := entity.User{ID: uuid.New(), Name: "John Doe", Phone: "+1 555"}
	require.NoError(t, local.SaveSession(user, "portal-abc"))

	user.Phone = "X"
	require.NoError(t, local.SaveUser(user))

	loaded, tok, ok := local.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "X", loaded.Phone)
	assert.Equal(t, "portal-abc", tok)
}

func TestClearIsIdempotent(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, local.SaveSession(entity.User{ID: uuid.New()}, "portal-abc"))
	require.NoError(t, local.Clear())

	_, _, ok := local.LoadSession()
	assert.False(t, ok)

	require.NoError(t, local.Clear())
}
