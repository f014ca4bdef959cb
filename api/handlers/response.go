package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rwandapathways/pathways-api/config"
	"github.com/rwandapathways/pathways-api/conversations"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/session"
)

// errBadRequest marks request bodies that could not be decoded
var errBadRequest = errors.New("malformed request body")

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, databases.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &verrs),
		errors.Is(err, errBadRequest),
		errors.Is(err, session.ErrInvalidRole),
		errors.Is(err, session.ErrPasswordRequired),
		errors.Is(err, conversations.ErrEmptyContent),
		errors.Is(err, conversations.ErrSelfMessage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrEmailTaken), errors.Is(err, databases.ErrDuplicateEmail):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	config.ErrorStatus(message, statusFor(err), w, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
