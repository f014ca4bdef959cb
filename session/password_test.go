package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwandapathways/pathways-api/session"
)

func TestPolicyFor(t *testing.T) {
	p, err := session.PolicyFor("placeholder")
	require.NoError(t, err)
	assert.IsType(t, session.PlaceholderPolicy{}, p)

	p, err = session.PolicyFor("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, session.BcryptPolicy{}, p)

	_, err = session.PolicyFor("plaintext")
	assert.EqualError(t, err, `unknown password policy "plaintext"`)
}

func TestPlaceholderPolicy(t *testing.T) {
	p := session.PlaceholderPolicy{}

	assert.True(t, p.Check("", "x"))
	assert.True(t, p.Check("whatever", "x"))
	assert.False(t, p.Check("whatever", ""))
}

func TestBcryptPolicy(t *testing.T) {
	p := session.BcryptPolicy{}

	hash, err := p.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, p.Check(hash, "s3cret"))
	assert.False(t, p.Check(hash, "wrong"))
	assert.False(t, p.Check("", "s3cret"))
}

func TestCookieStorage(t *testing.T) {
	store := session.NewCookieStore("test-secret-test-secret-test-sec", false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	require.NoError(t, session.NewCookieStorage(store, w, r).Set("user", `{"id":"2"}`))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	r.AddCookie(cookies[0])
	v, ok, err := session.NewCookieStorage(store, httptest.NewRecorder(), r).Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"2"}`, v)

	w = httptest.NewRecorder()
	require.NoError(t, session.NewCookieStorage(store, w, r).Remove("user"))
	expired := w.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)
}

func TestCookieStorageRejectsForeignSignature(t *testing.T) {
	signer := session.NewCookieStore("one-secret-one-secret-one-secret", false)
	verifier := session.NewCookieStore("two-secret-two-secret-two-secret", false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, session.NewCookieStorage(signer, w, r).Set("user", `{"id":"1"}`))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(w.Result().Cookies()[0])
	_, ok, err := session.NewCookieStorage(verifier, httptest.NewRecorder(), r).Get("user")
	assert.Error(t, err)
	assert.False(t, ok)
}
