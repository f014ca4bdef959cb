package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LATENCY_SCALE", "0")
	conf, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "pathways", conf.DatabaseName)
	assert.Equal(t, float64(0), conf.LatencyScale)
	assert.Equal(t, 30*time.Second, conf.RequestTimeout)
	assert.Equal(t, "placeholder", conf.PasswordPolicy)
	assert.False(t, conf.TrustProxy)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	_, err := New()
	assert.EqualError(t, err, `unknown STORE_DRIVER "postgres"`)
}

func TestNewMongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("DB_URI", "")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	conf, err := New()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"response": "error it borked, bad request"}`, rr.Body.String())
}

func TestErrorStatusEscapesQuotes(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("failed to decode request", http.StatusBadRequest, rr,
		errors.New(`invalid character '"' after object key`))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, `failed to decode request, invalid character '"' after object key`, body["response"])
}
