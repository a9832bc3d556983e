package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/storage"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

func freshSession(t *testing.T, ttl time.Duration) domain.Session {
	t.Helper()
	auth := identity.New("test-secret", ttl, 0)
	sess, err := auth.Login(context.Background(), "priya@sreeranga.test", "Passw0rd!")
	require.NoError(t, err)
	return sess
}

func TestAuthLoginTransitions(t *testing.T) {
	kv := storage.NewMemory()
	a := store.NewAuth(kv)

	assert.Equal(t, store.AuthAnonymous, a.Snapshot().State)

	a.LoginStart()
	snap := a.Snapshot()
	assert.Equal(t, store.AuthAuthenticating, snap.State)
	assert.True(t, snap.Loading)

	sess := freshSession(t, time.Hour)
	a.LoginSuccess(sess)
	snap = a.Snapshot()
	assert.Equal(t, store.AuthAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "priya@sreeranga.test", snap.User.Email)

	// session persisted for restore
	tok, err := kv.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, sess.Token, tok)
}

func TestAuthLoginFailureClearsPartialSession(t *testing.T) {
	kv := storage.NewMemory()
	a := store.NewAuth(kv)
	a.LoginSuccess(freshSession(t, time.Hour))

	a.LoginStart()
	a.LoginFailure("invalid email or password")

	snap := a.Snapshot()
	assert.Equal(t, store.AuthError, snap.State)
	assert.Nil(t, snap.User)
	assert.Equal(t, "invalid email or password", snap.Err)

	_, err := kv.Get("authToken")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthLogoutClearsPersistedSession(t *testing.T) {
	kv := storage.NewMemory()
	a := store.NewAuth(kv)
	a.LoginSuccess(freshSession(t, time.Hour))

	a.Logout()

	assert.Equal(t, store.AuthAnonymous, a.Snapshot().State)
	for _, key := range []string{"authToken", "refreshToken", "user"} {
		_, err := kv.Get(key)
		assert.ErrorIs(t, err, storage.ErrNotFound, key)
	}
}

func TestAuthRestoreWithValidToken(t *testing.T) {
	kv := storage.NewMemory()
	store.NewAuth(kv).LoginSuccess(freshSession(t, time.Hour))

	// a fresh store over the same storage, as after a restart
	a := store.NewAuth(kv)
	require.True(t, a.Restore(time.Now()))

	snap := a.Snapshot()
	assert.Equal(t, store.AuthAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Priya Raman", snap.User.Name)
}

func TestAuthRestoreWithExpiredTokenStaysAnonymous(t *testing.T) {
	kv := storage.NewMemory()
	store.NewAuth(kv).LoginSuccess(freshSession(t, time.Millisecond))

	a := store.NewAuth(kv)
	assert.False(t, a.Restore(time.Now().Add(time.Second)))
	assert.Equal(t, store.AuthAnonymous, a.Snapshot().State)

	// the stale session is wiped, not left behind
	_, err := kv.Get("authToken")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthRestoreWithGarbageTokenFailsClosed(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set("authToken", "not-a-jwt"))
	require.NoError(t, kv.Set("user", `{"id":"u-x","email":"x@y.test","name":"X"}`))

	a := store.NewAuth(kv)
	assert.False(t, a.Restore(time.Now()))
	assert.Equal(t, store.AuthAnonymous, a.Snapshot().State)
}

func TestAuthCheckExpiryDropsSession(t *testing.T) {
	kv := storage.NewMemory()
	a := store.NewAuth(kv)
	a.LoginSuccess(freshSession(t, time.Millisecond))

	assert.True(t, a.CheckExpiry(time.Now().Add(time.Second)))
	assert.Equal(t, store.AuthAnonymous, a.Snapshot().State)

	// a second check is a no-op
	assert.False(t, a.CheckExpiry(time.Now().Add(time.Second)))
}
