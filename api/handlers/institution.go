package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/search"
)

// Institution exported for testing purposes
type Institution struct {
	DB databases.InstitutionDatabase
}

// InstitutionsHandler lists institutions, narrowed by the optional q and type
// query params
func (i Institution) InstitutionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	t := r.URL.Query().Get("type")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	insts, err := i.DB.Find(ctx)
	if err != nil {
		writeError(w, "failed to get institutions", err)
		return
	}
	insts = search.ByType(t, search.Institutions(q, insts))
	// the frontend expects a list, never null
	if insts == nil {
		insts = []models.Institution{}
	}
	writeJSON(w, http.StatusOK, insts)
}

// InstitutionHandler returns an institution given its id
func (i Institution) InstitutionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	zap.S().Debugf("institution_id: %v", id)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	inst, err := i.DB.FindOne(ctx, id)
	if err != nil {
		writeError(w, "failed to get institution by ID", err)
		return
	}
	writeJSON(w, http.StatusOK, inst)
}

// CreateInstitutionHandler adds an institution with its programs
func (i Institution) CreateInstitutionHandler(w http.ResponseWriter, r *http.Request) {
	var inst models.Institution
	if err := decodeBody(r, &inst); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := inst.Validate(); err != nil {
		writeError(w, "invalid institution", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := i.DB.InsertOne(ctx, inst)
	if err != nil {
		writeError(w, "failed to create institution", err)
		return
	}
	zap.S().Infow("institution created", "id", created.ID, "name", created.Name)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateInstitutionHandler merges the supplied fields over the stored
// institution. The merged record must still be valid.
func (i Institution) UpdateInstitutionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch models.InstitutionPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	current, err := i.DB.FindOne(ctx, id)
	if err != nil {
		writeError(w, "failed to get institution by ID", err)
		return
	}
	if err := patch.Apply(*current).Validate(); err != nil {
		writeError(w, "invalid institution", err)
		return
	}

	updated, err := i.DB.UpdateOne(ctx, id, patch)
	if err != nil {
		writeError(w, "failed to update institution", err)
		return
	}
	zap.S().Infow("institution updated", "id", id)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteInstitutionHandler removes an institution and its programs
func (i Institution) DeleteInstitutionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := i.DB.DeleteOne(ctx, id); err != nil {
		writeError(w, "failed to delete institution", err)
		return
	}
	zap.S().Infow("institution deleted", "id", id)
	writeJSON(w, http.StatusOK, map[string]string{"response": "institution deleted"})
}
