package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/logging"
)

// Store drivers understood by the app
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config holds the project config values
type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	BaseURL           string        `envconfig:"BASE_URL"`
	Env               string        `envconfig:"ENV" default:"local"`
	StoreDriver       string        `envconfig:"STORE_DRIVER" default:"memory"`
	URL               string        `envconfig:"DB_URI"`
	DatabaseName      string        `envconfig:"DB_NAME" default:"pathways"`
	LatencyScale      float64       `envconfig:"LATENCY_SCALE" default:"1"`
	SessionSecret     string        `envconfig:"SESSION_SECRET"`
	PasswordPolicy    string        `envconfig:"PASSWORD_POLICY" default:"placeholder"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	AuthRatePerSecond float64       `envconfig:"AUTH_RATE_PER_SECOND" default:"5"`
	AuthRateBurst     int           `envconfig:"AUTH_RATE_BURST" default:"10"`
	TrustProxy        bool          `envconfig:"TRUST_PROXY" default:"false"`
}

// New sets up all config related services. A .env file in the working
// directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreMongo {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.StoreDriver == StoreMongo && c.URL == "" {
		return nil, fmt.Errorf("DB_URI is required when STORE_DRIVER=%s", StoreMongo)
	}

	//setup zap logger and replace default logger
	logger, err := logging.New(c.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	_ = zap.ReplaceGlobals(logger)

	return &c, nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	b, _ := json.Marshal(map[string]string{"response": fmt.Sprintf("%s, %v", message, err)})
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
