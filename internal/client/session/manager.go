// Package session reconciles the transport's bearer token with a fetched
// user record and exposes a stable authenticated/anonymous view to the
// rest of the application.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
	"github.com/dreamcatcher/dreamcatcher-go/internal/logging"
)

// State is the session lifecycle position.
type State string

const (
	// StateUnresolved is the initial state: no attempt yet to confirm a
	// stored token.
	StateUnresolved State = "unresolved"
	// StateResolving means a "who am I" fetch is in flight.
	StateResolving State = "resolving"
	// StateAuthenticated means a user record is held.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no valid session exists.
	StateAnonymous State = "anonymous"
)

// AuthAPI is the slice of the auth resource client the manager needs.
// *api.AuthAPI satisfies it; tests can provide a fake.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
}

// TokenHolder is the slice of the transport that owns the bearer token.
// *api.Client satisfies it.
type TokenHolder interface {
	Token() string
	IsAuthenticated() bool
	SetToken(ctx context.Context, token string)
	ClearToken(ctx context.Context)
}

// Snapshot is an immutable view of the session handed to consumers.
type Snapshot struct {
	State State
	User  *models.User
}

// IsAuthenticated is derived, never stored: a session is authenticated
// exactly when a user record is held.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}

// IsLoading reports whether the startup resolution has not finished yet.
func (s Snapshot) IsLoading() bool {
	return s.State == StateUnresolved || s.State == StateResolving
}

// Manager is the per-process session state machine.
type Manager struct {
	auth   AuthAPI
	tokens TokenHolder
	log    logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
}

func NewManager(auth AuthAPI, tokens TokenHolder, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	return &Manager{auth: auth, tokens: tokens, log: log, state: StateUnresolved}
}

// Snapshot returns a copy of the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user}
}

func (m *Manager) set(state State, user *models.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.mu.Unlock()
}

// Resolve performs the startup transition. With no token held it settles
// on Anonymous immediately. With a token it confirms the session via
// "who am I"; any failure clears the token and settles on Anonymous. The
// failure is swallowed: an expired stored token is not an error, just an
// anonymous start.
func (m *Manager) Resolve(ctx context.Context) Snapshot {
	if !m.tokens.IsAuthenticated() {
		m.set(StateAnonymous, nil)
		return m.Snapshot()
	}

	// A JWT whose exp already passed cannot resolve; skip the round trip.
	if tokenExpired(m.tokens.Token()) {
		m.log.Info(ctx, "stored token expired, starting anonymous")
		m.tokens.ClearToken(ctx)
		m.set(StateAnonymous, nil)
		return m.Snapshot()
	}

	m.set(StateResolving, nil)

	user, err := m.auth.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "session resolution failed, starting anonymous", "error", err)
		m.tokens.ClearToken(ctx)
		m.set(StateAnonymous, nil)
		return m.Snapshot()
	}

	m.set(StateAuthenticated, user)
	return m.Snapshot()
}

// Login authenticates and fetches the user record. A login failure
// propagates unmodified and leaves the state untouched. A failure of the
// follow-up "who am I" clears the just-stored token before propagating,
// so the session never holds a token it could not confirm.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	if _, err := m.auth.Login(ctx, email, password); err != nil {
		return nil, err
	}

	user, err := m.auth.Me(ctx)
	if err != nil {
		m.tokens.ClearToken(ctx)
		m.set(StateAnonymous, nil)
		return nil, err
	}

	m.set(StateAuthenticated, user)
	return user, nil
}

// Register creates the account and immediately logs in with the same
// credentials.
func (m *Manager) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if _, err := m.auth.Register(ctx, email, password, name); err != nil {
		return nil, err
	}
	return m.Login(ctx, email, password)
}

// Logout clears the token and settles on Anonymous unconditionally.
// Persistence failures never block a local sign-out.
func (m *Manager) Logout(ctx context.Context) {
	m.tokens.ClearToken(ctx)
	m.set(StateAnonymous, nil)
}

// tokenExpired reports whether raw is a JWT with an exp claim in the
// past. Opaque or claimless tokens return false; the server stays the
// authority on their validity.
func tokenExpired(raw string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
