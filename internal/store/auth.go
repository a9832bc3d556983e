package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/storage"
)

type AuthState string

const (
	AuthAnonymous      AuthState = "anonymous"
	AuthAuthenticating AuthState = "authenticating"
	AuthAuthenticated  AuthState = "authenticated"
	AuthError          AuthState = "error"
)

// Storage keys the auth store owns.
const (
	keyAuthToken    = "authToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// AuthSnapshot is an immutable view of the session state.
type AuthSnapshot struct {
	State   AuthState    `json:"state"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"-"`
	Err     string       `json:"error,omitempty"`
	Loading bool         `json:"loading"`
}

// Auth owns the session identity and its persistence to durable client
// storage. Transitions follow a fixed machine: anonymous->authenticating
// on a login attempt, then authenticated or error; authenticated drops
// back to anonymous on logout or detected token expiry.
type Auth struct {
	mu      sync.Mutex
	state   AuthState
	session *domain.Session
	err     string
	kv      storage.KV
	signal
}

func NewAuth(kv storage.KV) *Auth {
	return &Auth{state: AuthAnonymous, kv: kv}
}

// LoginStart marks a login attempt in flight and clears any prior error.
func (a *Auth) LoginStart() {
	a.mu.Lock()
	a.state = AuthAuthenticating
	a.err = ""
	a.mu.Unlock()
	a.emit()
}

// LoginSuccess installs the session and persists it so a restart can
// restore it.
func (a *Auth) LoginSuccess(sess domain.Session) {
	a.mu.Lock()
	a.state = AuthAuthenticated
	a.session = &sess
	a.err = ""
	a.persist(sess)
	a.mu.Unlock()
	a.emit()
}

// LoginFailure clears any partial session and records the message.
func (a *Auth) LoginFailure(msg string) {
	a.mu.Lock()
	a.state = AuthError
	a.session = nil
	a.err = msg
	a.clearPersisted()
	a.mu.Unlock()
	a.emit()
}

// Logout drops the session and wipes it from storage.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.state = AuthAnonymous
	a.session = nil
	a.err = ""
	a.clearPersisted()
	a.mu.Unlock()
	a.emit()
}

// Restore attempts anonymous->authenticated straight from storage. A
// missing, undecodable, or expired token leaves the store anonymous and
// removes whatever was persisted.
func (a *Auth) Restore(now time.Time) bool {
	a.mu.Lock()
	token, err := a.kv.Get(keyAuthToken)
	if err != nil || identity.TokenExpired(token, now) {
		a.clearPersisted()
		a.mu.Unlock()
		return false
	}
	raw, err := a.kv.Get(keyUser)
	if err != nil {
		a.clearPersisted()
		a.mu.Unlock()
		return false
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		a.clearPersisted()
		a.mu.Unlock()
		return false
	}
	refresh, _ := a.kv.Get(keyRefreshToken)
	a.state = AuthAuthenticated
	a.session = &domain.Session{User: u, Token: token, RefreshToken: refresh}
	a.mu.Unlock()
	a.emit()
	return true
}

// CheckExpiry forces authenticated->anonymous when the access token's
// embedded expiry has passed. Returns true when a session was dropped.
func (a *Auth) CheckExpiry(now time.Time) bool {
	a.mu.Lock()
	if a.state != AuthAuthenticated || a.session == nil {
		a.mu.Unlock()
		return false
	}
	if !identity.TokenExpired(a.session.Token, now) {
		a.mu.Unlock()
		return false
	}
	a.state = AuthAnonymous
	a.session = nil
	a.clearPersisted()
	a.mu.Unlock()
	a.emit()
	return true
}

func (a *Auth) Snapshot() AuthSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := AuthSnapshot{
		State:   a.state,
		Err:     a.err,
		Loading: a.state == AuthAuthenticating,
	}
	if a.session != nil {
		u := a.session.User
		snap.User = &u
		snap.Token = a.session.Token
	}
	return snap
}

// Persistence is best effort: a failed write must never surface as a
// store error, matching how the browser original ignored localStorage
// failures.
func (a *Auth) persist(sess domain.Session) {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return
	}
	_ = a.kv.Set(keyAuthToken, sess.Token)
	_ = a.kv.Set(keyRefreshToken, sess.RefreshToken)
	_ = a.kv.Set(keyUser, string(raw))
}

func (a *Auth) clearPersisted() {
	_ = a.kv.Delete(keyAuthToken)
	_ = a.kv.Delete(keyRefreshToken)
	_ = a.kv.Delete(keyUser)
}
