package session

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// CookieName is the name of the signed session cookie
const CookieName = "pathways-session"

// Storage is the durable client-side storage the session is persisted to.
// It holds string values under string keys.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// NewCookieStore returns the signed cookie store used for sessions. An empty
// secret gets a random key, which invalidates sessions on every restart.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	key := []byte(secret)
	if secret == "" {
		zap.S().Warn("SESSION_SECRET is not set, using a random key")
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CookieStorage keeps values in the signed session cookie of one request
type CookieStorage struct {
	store sessions.Store
	w     http.ResponseWriter
	r     *http.Request
}

// NewCookieStorage binds the cookie store to a single request/response pair
func NewCookieStorage(store sessions.Store, w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{store: store, w: w, r: r}
}

func (c *CookieStorage) session() (*sessions.Session, error) {
	return c.store.Get(c.r, CookieName)
}

// Get returns the value under key. A cookie that fails verification is reported as an error.
func (c *CookieStorage) Get(key string) (string, bool, error) {
	sess, err := c.session()
	if err != nil {
		return "", false, err
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

// Set stores value under key and writes the cookie
func (c *CookieStorage) Set(key, value string) error {
	// a tampered cookie still yields a fresh session to overwrite
	sess, _ := c.session()
	sess.Values[key] = value
	return sess.Save(c.r, c.w)
}

// Remove deletes key and expires the cookie
func (c *CookieStorage) Remove(key string) error {
	sess, _ := c.session()
	delete(sess.Values, key)
	sess.Options.MaxAge = -1
	return sess.Save(c.r, c.w)
}
