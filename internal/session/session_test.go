package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"), logger.NewLogger("test"))
}

func testUser() models.User {
	return models.User{
		ID:         "member-id",
		Email:      "viewer@example.com",
		Password:   "viewer-pass",
		Status:     models.StatusLive,
		ExpireTime: time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second),
	}
}

func TestRestore_AbsentFile(t *testing.T) {
	store := newTestStore(t)

	state := store.Restore()

	assert.False(t, state.Authenticated)
	assert.False(t, state.Admin)
	assert.Nil(t, state.CurrentUser)
}

func TestRestore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path, logger.NewLogger("test"))
	state := store.Restore()

	assert.False(t, state.Authenticated)
	assert.Nil(t, state.CurrentUser)
}

func TestEstablishAndRestore(t *testing.T) {
	store := newTestStore(t)
	user := testUser()

	require.NoError(t, store.Establish(user, true))

	// a fresh store over the same path sees the persisted session
	reopened := NewStore(store.path, logger.NewLogger("test"))
	state := reopened.Restore()

	assert.True(t, state.Authenticated)
	assert.True(t, state.Admin)
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, user.Email, state.CurrentUser.Email)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Establish(testUser(), false))
	store.MarkAdminVerified("gate-token")

	require.NoError(t, store.Clear())

	assert.False(t, store.State().Authenticated)
	_, verified := store.AdminVerified()
	assert.False(t, verified, "gate verification resets on sign-out")

	_, err := os.Stat(store.path)
	assert.True(t, os.IsNotExist(err), "session file removed")

	require.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestClear_KeepsRememberedCredentials(t *testing.T) {
	store := newTestStore(t)
	credentials := models.Credentials{Email: "viewer@example.com", Password: "viewer-pass"}

	require.NoError(t, store.Remember(credentials))
	require.NoError(t, store.Establish(testUser(), false))
	require.NoError(t, store.Clear())

	remembered, ok := store.Remembered()
	assert.True(t, ok)
	assert.Equal(t, credentials, remembered)
}

func TestRememberRoundTrip(t *testing.T) {
	store := newTestStore(t)
	credentials := models.Credentials{Email: "viewer@example.com", Password: "viewer-pass"}

	_, ok := store.Remembered()
	assert.False(t, ok)

	require.NoError(t, store.Remember(credentials))

	remembered, ok := store.Remembered()
	assert.True(t, ok)
	assert.Equal(t, credentials, remembered)

	require.NoError(t, store.Forget())

	_, ok = store.Remembered()
	assert.False(t, ok)

	require.NoError(t, store.Forget(), "forgetting twice is fine")
}

func TestAdminVerified(t *testing.T) {
	store := newTestStore(t)

	_, verified := store.AdminVerified()
	assert.False(t, verified)

	store.MarkAdminVerified("gate-token")

	token, verified := store.AdminVerified()
	assert.True(t, verified)
	assert.Equal(t, "gate-token", token)

	// the flag is transient: a fresh store over the same path starts unverified
	reopened := NewStore(store.path, logger.NewLogger("test"))
	reopened.Restore()
	_, verified = reopened.AdminVerified()
	assert.False(t, verified)
}

func TestSessionFilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Establish(testUser(), false))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
