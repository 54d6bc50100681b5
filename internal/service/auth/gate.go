package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bookchat/seeker/internal/model/user"
)

var (
	// ErrMissingFields rejects a login or registration before any network
	// call is made.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidCredentials covers authenticator rejection and unusable
	// responses alike; transport failures are not distinguished here.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticator verifies credentials and creates accounts against the
// booking backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, profile user.Profile) error
}

// Session is the process-wide authentication state. The token lives here for
// the lifetime of the process, never in ambient storage.
type Session struct {
	Authenticated bool
	Token         string
}

// Gate owns the Session and decides whether the chat surface is reachable.
// It knows nothing about conversations; chat-side resets on logout are the
// conversation controller's job.
type Gate struct {
	mu            sync.RWMutex
	authenticator Authenticator
	session       Session
}

// NewGate returns an unauthenticated Gate backed by the given authenticator.
func NewGate(authenticator Authenticator) *Gate {
	return &Gate{authenticator: authenticator}
}

// Login validates the form, delegates verification and stores the returned
// token. On any failure the session is left untouched.
func (g *Gate) Login(ctx context.Context, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrMissingFields
	}

	token, err := g.authenticator.Login(ctx, email, password)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if token == "" {
		return Session{}, ErrInvalidCredentials
	}

	g.mu.Lock()
	g.session = Session{Authenticated: true, Token: token}
	session := g.session
	g.mu.Unlock()

	return session, nil
}

// Register validates the form and delegates account creation. A successful
// registration does not authenticate; the caller returns to the login form.
func (g *Gate) Register(ctx context.Context, profile user.Profile) error {
	if strings.TrimSpace(profile.Name) == "" ||
		strings.TrimSpace(profile.Email) == "" ||
		strings.TrimSpace(profile.Phone) == "" ||
		strings.TrimSpace(profile.Password) == "" ||
		strings.TrimSpace(profile.Role) == "" {
		return ErrMissingFields
	}

	if err := g.authenticator.Register(ctx, profile); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return nil
}

// Logout discards the token and flips the gate closed.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.session = Session{}
	g.mu.Unlock()
}

// Authenticated reports whether a session is active.
func (g *Gate) Authenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.Authenticated
}

// Token returns the current bearer token, if any.
func (g *Gate) Token() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.Token, g.session.Authenticated
}

// Current returns a copy of the session state.
func (g *Gate) Current() Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}
