package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/session"
)

var errNoSession = errors.New("session middleware is not installed")

// Auth handles sign in, registration and sign out
type Auth struct {
	Guard *api.Guard
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

// AuthResponse is returned by login and registration
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// SessionResponse describes the caller's session
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func manager(w http.ResponseWriter, r *http.Request) (*session.Manager, bool) {
	m, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, "session unavailable", errNoSession)
	}
	return m, ok
}

// LoginHandler signs in with email and password, sets the session cookie and
// returns a bearer token
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	m, ok := manager(w, r)
	if !ok {
		return
	}

	u, err := m.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "failed to login", err)
		return
	}
	token, err := a.Guard.IssueToken(r, u)
	if err != nil {
		writeError(w, "failed to issue token", err)
		return
	}
	zap.S().Infow("user logged in", "id", u.ID)
	writeJSON(w, http.StatusOK, AuthResponse{User: u, Token: token})
}

// RegisterHandler creates a student or counselor account and signs it in
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	m, ok := manager(w, r)
	if !ok {
		return
	}

	u, err := m.Register(r.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		writeError(w, "failed to register", err)
		return
	}
	token, err := a.Guard.IssueToken(r, u)
	if err != nil {
		writeError(w, "failed to issue token", err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{User: u, Token: token})
}

// LogoutHandler clears the session cookie and revokes the bearer token
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	m, ok := manager(w, r)
	if !ok {
		return
	}
	if err := a.Guard.RevokeToken(r); err != nil {
		zap.S().Debugw("token was not revoked", "error", err)
	}
	if err := m.Logout(); err != nil {
		writeError(w, "failed to logout", err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
}

// SessionHandler returns the user restored from the session cookie, if any
func (a Auth) SessionHandler(w http.ResponseWriter, r *http.Request) {
	m, ok := manager(w, r)
	if !ok {
		return
	}
	u, authenticated := m.Current()
	writeJSON(w, http.StatusOK, SessionResponse{Authenticated: authenticated, User: u})
}
