package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rwandapathways/pathways-api/config"
)

// ErrRouteNotFound is reported for requests that match no route
var ErrRouteNotFound = errors.New("no route matches the request")

// HealthCheckHandler reports that the process is serving
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true}`)
}

// NotFoundHandler is the catch-all for unknown paths
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	config.ErrorStatus("not found", http.StatusNotFound, w, ErrRouteNotFound)
}
