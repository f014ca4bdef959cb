// Package session tracks who is signed in. A Manager is created per request
// (or per client) and passed down explicitly; there is no package-level
// current user.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
)

// StorageKey is the storage key the signed-in user is persisted under
const StorageKey = "user"

var (
	// ErrInvalidCredentials is returned for an unknown email or a rejected password
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already has a user
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidRole is returned when registering with a role that cannot self-register
	ErrInvalidRole = errors.New("role must be student or counselor")
	// ErrPasswordRequired is returned when registering without a password
	ErrPasswordRequired = errors.New("password is required")
)

// Manager is the session state machine: anonymous, or authenticated as one user
type Manager struct {
	users   databases.UserDatabase
	storage Storage
	policy  PasswordPolicy

	mu   sync.RWMutex
	user *models.User
}

// NewManager returns an anonymous manager. Call Restore to pick up a
// previously persisted user.
func NewManager(users databases.UserDatabase, storage Storage, policy PasswordPolicy) *Manager {
	if policy == nil {
		policy = PlaceholderPolicy{}
	}
	return &Manager{
		users:   users,
		storage: storage,
		policy:  policy,
	}
}

// Restore reads the persisted user. Absent or unreadable data leaves the
// manager anonymous.
func (m *Manager) Restore() {
	raw, ok, err := m.storage.Get(StorageKey)
	if err != nil {
		zap.S().Debugw("ignoring unreadable session", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		zap.S().Debugw("ignoring malformed session", "error", err)
		return
	}
	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
}

// Current returns the signed-in user
func (m *Manager) Current() (*models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// Login signs in the user with email. On failure the state is unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := m.users.FindByEmail(ctx, email)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !m.policy.Check(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if err := m.persist(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates a student or counselor account and signs it in
func (m *Manager) Register(ctx context.Context, email, password, name string, role models.Role) (*models.User, error) {
	if role != models.RoleStudent && role != models.RoleCounselor {
		return nil, ErrInvalidRole
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	candidate := models.User{
		Email: strings.TrimSpace(email),
		Name:  strings.TrimSpace(name),
		Role:  role,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	hash, err := m.policy.Hash(password)
	if err != nil {
		return nil, err
	}
	candidate.Password = hash

	u, err := m.users.InsertOne(ctx, candidate)
	if errors.Is(err, databases.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := m.persist(u); err != nil {
		return nil, err
	}
	zap.S().Infow("user registered", "id", u.ID, "role", u.Role)
	return u, nil
}

// Refresh replaces the persisted copy of the signed-in user after their
// record changed. It does nothing for other users or an anonymous session.
func (m *Manager) Refresh(u *models.User) error {
	cur, ok := m.Current()
	if !ok || cur.ID != u.ID {
		return nil
	}
	cp := *u
	return m.persist(&cp)
}

// Logout forgets the persisted user and returns to anonymous
func (m *Manager) Logout() error {
	if err := m.storage.Remove(StorageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	return nil
}

func (m *Manager) persist(u *models.User) error {
	u.Password = ""
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.storage.Set(StorageKey, string(b)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	m.mu.Lock()
	cp := *u
	m.user = &cp
	m.mu.Unlock()
	return nil
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying m
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the manager stored in ctx
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	return m, ok
}
