package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/config"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/session"
)

// TokenTTL is how long an issued bearer token stays valid
const TokenTTL = 24 * time.Hour

var (
	// ErrUnauthenticated is reported when neither a session nor a token identifies the caller
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is reported when the caller's role may not use the route
	ErrForbidden = errors.New("insufficient role")
	// ErrRateLimited is reported when a client exceeds its request budget
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Guard authenticates requests through the session cookie, a cached bearer
// token, or basic credentials
type Guard struct {
	Users    databases.UserDatabase
	Policy   session.PasswordPolicy
	Sessions sessions.Store

	authenticator auth.Authenticator
	cache         store.Cache
}

// NewGuard sets up the go-guardian strategies
func NewGuard(ctx context.Context, users databases.UserDatabase, policy session.PasswordPolicy, sessionStore sessions.Store) *Guard {
	g := &Guard{
		Users:    users,
		Policy:   policy,
		Sessions: sessionStore,
	}
	g.authenticator = auth.New()
	g.cache = store.NewFIFO(ctx, TokenTTL)
	basicStrategy := basic.New(g.ValidateUser, g.cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, g.cache)

	g.authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return g
}

// ValidateUser checks basic credentials against the password policy
func (g *Guard) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	u, err := g.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("no matching email found")
	}
	if !g.Policy.Check(u.Password, password) {
		return nil, fmt.Errorf("invalid credentials")
	}
	return authInfo(u), nil
}

func authInfo(u *models.User) auth.Info {
	return auth.NewDefaultUser(u.Email, u.ID, []string{string(u.Role)}, nil)
}

// SessionMiddleware gives every request its own session manager, restored
// from the signed cookie
func (g *Guard) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := session.NewManager(g.Users, session.NewCookieStorage(g.Sessions, w, r), g.Policy)
		m.Restore()
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), m)))
	})
}

// Middleware rejects requests without an authenticated user and puts the
// user in the request context
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		u, err := g.identify(r)
		if err != nil {
			zap.S().Debugw("unauthorized",
				"url", r.URL,
				"error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func (g *Guard) identify(r *http.Request) (*models.User, error) {
	if m, ok := session.FromContext(r.Context()); ok {
		if u, ok := m.Current(); ok {
			return u, nil
		}
	}
	info, err := g.authenticator.Authenticate(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	u, err := g.Users.FindOne(r.Context(), info.ID())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return u, nil
}

// AdminOnly lets through users with the admin role. It must run after Middleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok || u.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			config.ErrorStatus("admin role required", http.StatusForbidden, w, ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IssueToken returns a new bearer token for u
func (g *Guard) IssueToken(r *http.Request, u *models.User) (string, error) {
	token := uuid.New().String()
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, authInfo(u), r); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// RevokeToken drops the bearer token of the request, if it carries one
func (g *Guard) RevokeToken(r *http.Request) error {
	reqToken, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || reqToken == "" {
		return nil
	}
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	return auth.Revoke(tokenStrategy, reqToken, r)
}
