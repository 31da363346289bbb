package session

import (
	"context"
	"errors"
	"sync"

	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/infrastructure/storage"
	"patient-portal/internal/usecase"

	"github.com/sirupsen/logrus"
)

var ErrNotAuthenticated = errors.New("no authenticated session")

// Manager owns the authenticated identity for the portal's lifetime. It is
// constructed once at process start and injected into the delivery layer;
// nothing else holds session state. Identity and token are persisted to
// durable storage together so a restart restores the session, and cleared
// together on logout.
type Manager struct {
	mu      sync.RWMutex
	auth    usecase.AuthUsecase
	storage *storage.Local
	log     *logrus.Logger

	user    *entity.User
	token   string
	loading bool
}

func NewManager(auth usecase.AuthUsecase, store *storage.Local, log *logrus.Logger) *Manager {
	return &Manager{
		auth:    auth,
		storage: store,
		log:     log,
		loading: true,
	}
}

// Hydrate restores the session from durable storage. It always completes:
// a missing or half-present snapshot just leaves the session unauthenticated.
// The restored token is re-registered so revocation checks keep working
// across restarts.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	user, tok, ok := m.storage.LoadSession()
	if !ok {
		return
	}

	if err := m.auth.Restore(ctx, tok, user.ID); err != nil {
		// Keep the session; the registry self-heals on next login.
		m.log.Warnf("Failed to restore session token registration: %+v", err)
	}

	m.user = &user
	m.token = tok
	m.log.Infof("Session hydrated: user=%s", user.ID)
}

// Loading reports whether hydration has finished. Transient: true only for
// the instant between construction and Hydrate returning.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Login delegates to the service layer; on success the identity and token
// are stored in memory and persisted. Failures propagate untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, tok, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	m.adopt(user, tok)
	return user, tok, nil
}

// Signup mirrors Login for freshly created identities.
func (m *Manager) Signup(ctx context.Context, req *dto.SignupRequest) (*entity.User, string, error) {
	user, tok, err := m.auth.Signup(ctx, req)
	if err != nil {
		return nil, "", err
	}
	m.adopt(user, tok)
	return user, tok, nil
}

func (m *Manager) adopt(user *entity.User, tok string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.token = tok
	if err := m.storage.SaveSession(*user, tok); err != nil {
		m.log.Warnf("Failed to persist session: %+v", err)
	}
}

// Logout clears identity and token from memory and durable storage
// unconditionally. Idempotent: a second call is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" {
		if err := m.auth.Logout(ctx, m.token); err != nil {
			m.log.Warnf("Failed to revoke session token: %+v", err)
		}
	}
	m.user = nil
	m.token = ""
	if err := m.storage.Clear(); err != nil {
		m.log.Warnf("Failed to clear durable session storage: %+v", err)
	}
}

// UpdateUser merges the patch into the current identity and persists the
// result. Purely local reconciliation; no service call happens here.
func (m *Manager) UpdateUser(patch entity.UserPatch) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return entity.User{}, ErrNotAuthenticated
	}

	merged := m.user.Merge(patch)
	m.user = &merged
	if err := m.storage.SaveUser(merged); err != nil {
		m.log.Warnf("Failed to persist identity update: %+v", err)
		return merged, err
	}
	return merged, nil
}

// Current returns a snapshot of the identity. ok is false when
// unauthenticated.
func (m *Manager) Current() (entity.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return entity.User{}, false
	}
	return *m.user, true
}

// Token returns the opaque session token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAuthenticated is the single source of truth for route protection:
// true iff both identity and token are present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.token != ""
}
