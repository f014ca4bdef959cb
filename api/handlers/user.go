package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/search"
	"github.com/rwandapathways/pathways-api/session"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UserHandler returns a user given a userID
func (u User) UserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	zap.S().Debugf("user_id: %v", userID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := u.DB.FindOne(ctx, userID)
	if err != nil {
		writeError(w, "failed to get user by ID", err)
		return
	}
	writeJSON(w, http.StatusOK, dbResp)
}

// CounselorsHandler lists counselors whose name or bio matches q
func (u User) CounselorsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := u.DB.Filter(ctx, models.User.IsCounselor)
	if err != nil {
		writeError(w, "failed to get counselors", err)
		return
	}
	writeJSON(w, http.StatusOK, search.Users(q, users))
}

// CurrentUserHandler returns the caller's own profile
func (u User) CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := u.DB.FindOne(ctx, me.ID)
	if err != nil {
		writeError(w, "failed to get user by ID", err)
		return
	}
	writeJSON(w, http.StatusOK, dbResp)
}

// UpdateCurrentUserHandler edits the caller's name, avatar and bio
func (u User) UpdateCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())

	var patch models.UserPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := patch.Validate(); err != nil {
		writeError(w, "invalid profile", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := u.DB.UpdateOne(ctx, me.ID, patch)
	if err != nil {
		writeError(w, "failed to update user", err)
		return
	}
	if m, ok := session.FromContext(r.Context()); ok {
		if err := m.Refresh(updated); err != nil {
			zap.S().Warnw("failed to refresh session", "id", me.ID, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, updated)
}
