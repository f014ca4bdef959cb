package handlers

import (
	"net/http"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/search"
)

// Search struct mostly used for mocking tests
type Search struct {
	InstitutionDB databases.InstitutionDatabase
	UserDB        databases.UserDatabase
}

// SearchResponse holds the matches of both directories
type SearchResponse struct {
	Institutions []models.Institution `json:"institutions"`
	Counselors   []models.User        `json:"counselors"`
}

// SearchHandler returns the institutions and counselors that match q. An
// empty q matches everything.
func (s Search) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	t := r.URL.Query().Get("type")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	insts, err := s.InstitutionDB.Find(ctx)
	if err != nil {
		writeError(w, "failed to get institutions", err)
		return
	}
	counselors, err := s.UserDB.Filter(ctx, models.User.IsCounselor)
	if err != nil {
		writeError(w, "failed to get counselors", err)
		return
	}

	resp := SearchResponse{
		Institutions: search.ByType(t, search.Institutions(q, insts)),
		Counselors:   search.Users(q, counselors),
	}
	if resp.Institutions == nil {
		resp.Institutions = []models.Institution{}
	}
	if resp.Counselors == nil {
		resp.Counselors = []models.User{}
	}
	writeJSON(w, http.StatusOK, resp)
}
