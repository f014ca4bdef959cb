package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/config"
	"github.com/rwandapathways/pathways-api/conversations"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/session"
)

// errMethodNotAllowed is reported for a known path with the wrong method
var errMethodNotAllowed = errors.New("method not allowed")

// App stores the router and the repositories, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	Institutions databases.InstitutionDatabase
	Users        databases.UserDatabase
	Messages     databases.MessageDatabase
	Policy       session.PasswordPolicy
	Hub          *NotificationHub
	Limiter      *api.RateLimiter

	client databases.ClientHelper
	cancel context.CancelFunc
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.Config.RequestTimeout <= 0 {
		a.Config.RequestTimeout = 30 * time.Second
	}
	if a.Policy == nil {
		a.Policy = session.PlaceholderPolicy{}
	}
	if a.Hub == nil {
		a.Hub = NewNotificationHub(nil)
	}
	if a.Limiter == nil {
		a.Limiter = api.NewRateLimiter(a.Config.AuthRatePerSecond, a.Config.AuthRateBurst)
		a.Limiter.TrustProxy = a.Config.TrustProxy
	}

	// setup go-guardian and the cookie session for middleware
	cookies := session.NewCookieStore(a.Config.SessionSecret, a.Config.Env == "production")
	guard := api.NewGuard(ctx, a.Users, a.Policy, cookies)
	metrics := api.NewMetrics()

	auth := Auth{Guard: guard}
	inst := Institution{DB: a.Institutions}
	u := User{DB: a.Users}
	s := Search{InstitutionDB: a.Institutions, UserDB: a.Users}
	msg := Message{Service: conversations.NewService(a.Messages, a.Users), Notifier: a.Hub}

	authed := func(h http.HandlerFunc) http.Handler { return guard.Middleware(h) }
	admin := func(h http.HandlerFunc) http.Handler { return guard.Middleware(api.AdminOnly(h)) }
	limited := func(h http.HandlerFunc) http.Handler { return a.Limiter.Middleware(h) }

	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// websocket connections outlive the request timeout, so they sit outside the subrouter
	r.Handle("/api/v1/ws/messages", guard.SessionMiddleware(authed(a.Hub.HandleMessagesWebSocket))).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(a.Config.RequestTimeout), guard.SessionMiddleware)

	apiCreate.Handle("/auth/login", limited(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/register", limited(auth.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", http.HandlerFunc(auth.LogoutHandler)).Methods("DELETE")
	apiCreate.Handle("/auth/session", http.HandlerFunc(auth.SessionHandler)).Methods("GET")

	apiCreate.Handle("/institutions", http.HandlerFunc(inst.InstitutionsHandler)).Methods("GET")
	apiCreate.Handle("/institutions/{id}", http.HandlerFunc(inst.InstitutionHandler)).Methods("GET")
	apiCreate.Handle("/counselors", http.HandlerFunc(u.CounselorsHandler)).Methods("GET")
	apiCreate.Handle("/search", http.HandlerFunc(s.SearchHandler)).Methods("GET")

	apiCreate.Handle("/users/me", authed(u.CurrentUserHandler)).Methods("GET")
	apiCreate.Handle("/users/me", authed(u.UpdateCurrentUserHandler)).Methods("PUT")
	apiCreate.Handle("/users/{id}", http.HandlerFunc(u.UserHandler)).Methods("GET")

	apiCreate.Handle("/messages", authed(msg.ConversationsHandler)).Methods("GET")
	apiCreate.Handle("/messages/{contactId}", authed(msg.ThreadHandler)).Methods("GET")
	apiCreate.Handle("/messages/{contactId}/read", authed(msg.MarkReadHandler)).Methods("PUT")
	apiCreate.Handle("/messages/{receiverId}", authed(msg.SendMessageHandler)).Methods("POST")

	apiCreate.Handle("/admin/institutions", admin(inst.InstitutionsHandler)).Methods("GET")
	apiCreate.Handle("/admin/institutions", admin(inst.CreateInstitutionHandler)).Methods("POST")
	apiCreate.Handle("/admin/institutions/{id}", admin(inst.UpdateInstitutionHandler)).Methods("PUT")
	apiCreate.Handle("/admin/institutions/{id}", admin(inst.DeleteInstitutionHandler)).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(api.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		config.ErrorStatus("method not allowed", http.StatusMethodNotAllowed, w, errMethodNotAllowed)
	})
	return r
}

// Initialize is invoked by main to set up the record store and create a router
func (a *App) Initialize() error {
	policy, err := session.PolicyFor(a.Config.PasswordPolicy)
	if err != nil {
		return err
	}
	a.Policy = policy

	switch a.Config.StoreDriver {
	case config.StoreMongo:
		if err := a.connectMongo(); err != nil {
			return err
		}
	default:
		store := databases.NewMemoryStore(a.Config.LatencyScale).Seed()
		a.Institutions = databases.NewMemoryInstitutionDatabase(store)
		a.Users = databases.NewMemoryUserDatabase(store)
		a.Messages = databases.NewMemoryMessageDatabase(store)
		zap.S().Infow("using the in-memory record store", "latencyScale", a.Config.LatencyScale)
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) connectMongo() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client

	db := databases.NewDatabase(&a.Config, client)
	a.Institutions = databases.NewInstitutionDatabase(db)
	a.Users = databases.NewUserDatabase(db)
	a.Messages = databases.NewMessageDatabase(db)
	zap.S().Infow("pathways-api has connected to the database", "database", a.Config.DatabaseName)
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close drops websocket clients, stops the token cache and disconnects the database
func (a *App) Close(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.Hub != nil {
		a.Hub.CloseAll()
	}
	if a.client != nil {
		return a.client.Disconnect(ctx)
	}
	return nil
}
