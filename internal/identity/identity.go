// Package identity is the mock identity provider. There is no real auth
// server: login checks seeded demo users after a simulated network delay
// and issues a short-lived token pair.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

var ErrBadCreds = errors.New("invalid email or password")

type demoUser struct {
	id    string
	name  string
	phone string
	hash  string
}

type Authenticator struct {
	secret  []byte
	ttl     time.Duration
	latency time.Duration
	users   map[string]demoUser
}

// New seeds the demo accounts. All of them use the password "Passw0rd!".
func New(secret string, ttl, latency time.Duration) *Authenticator {
	if secret == "" {
		secret = "dev-change-me"
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	a := &Authenticator{
		secret:  []byte(secret),
		ttl:     ttl,
		latency: latency,
		users:   map[string]demoUser{},
	}
	seed := []struct{ id, email, name, phone string }{
		{"u-priya", "priya@sreeranga.test", "Priya Raman", "9876543210"},
		{"u-arjun", "arjun@sreeranga.test", "Arjun Kumar", "9876501234"},
		{"u-meena", "meena@sreeranga.test", "Meena Lakshmi", "9988776655"},
	}
	for _, u := range seed {
		h, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
		a.users[u.email] = demoUser{id: u.id, name: u.name, phone: u.phone, hash: string(h)}
	}
	return a
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login verifies credentials after the simulated latency and returns a
// fresh session. Cancelling the context aborts the wait.
func (a *Authenticator) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if a.latency > 0 {
		select {
		case <-time.After(a.latency):
		case <-ctx.Done():
			return domain.Session{}, ctx.Err()
		}
	}

	u, ok := a.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.Session{}, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.hash), []byte(password)) != nil {
		return domain.Session{}, ErrBadCreds
	}

	now := time.Now().UTC()
	access, err := a.sign(u, email, now, now.Add(a.ttl))
	if err != nil {
		return domain.Session{}, err
	}
	refresh, err := a.sign(u, email, now, now.Add(7*24*time.Hour))
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		User:         domain.User{ID: u.id, Email: email, Name: u.name, Phone: u.phone},
		Token:        access,
		RefreshToken: refresh,
	}, nil
}

func (a *Authenticator) sign(u demoUser, email string, now, expires time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.id,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Name:  u.name,
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// TokenExpired decodes the embedded expiry claim and compares it to now.
// A token that cannot be decoded, or that carries no expiry, counts as
// expired: the check fails closed.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Before(now)
}
