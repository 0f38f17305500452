package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"
	errs "web-messenger/errors"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultAppName     = "WhatsApp Web UI"
	defaultAppVersion  = "1.0.0"
	defaultEnvironment = "development"
	defaultTheme       = "light"
	defaultLanguage    = "en"
)

type FirebaseConfig struct {
	APIKey            string `env:"FIREBASE_API_KEY"`
	AuthDomain        string `env:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `env:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `env:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `env:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `env:"FIREBASE_APP_ID"`
	MeasurementID     string `env:"FIREBASE_MEASUREMENT_ID"`
	CredentialsFile   string `env:"FIREBASE_CREDENTIALS_FILE"`
}

type AppConfig struct {
	Name        string `env:"APP_NAME,default=WhatsApp Web UI"`
	Version     string `env:"APP_VERSION,default=1.0.0"`
	Environment string `env:"ENVIRONMENT,default=development"`
}

type Features struct {
	Authentication    bool `env:"ENABLE_AUTHENTICATION,default=false"`
	RealTimeMessaging bool `env:"ENABLE_REAL_TIME_MESSAGING,default=false"`
	FileUpload        bool `env:"ENABLE_FILE_UPLOAD,default=false"`
}

type UIConfig struct {
	Theme    string `env:"THEME,default=light"`
	Language string `env:"LANGUAGE,default=en"`
}

type Config struct {
	APIBaseURL       string        `env:"REACT_APP_API_BASE_URL,API_BASE_URL,default=http://localhost:8080"`
	MockMode         bool          `env:"MOCK_MODE,default=true"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
	DefaultLimit     int           `env:"MESSAGES_LIMIT,default=50"`
	MaxMessageLength int           `env:"MAX_MESSAGE_LENGTH,default=4096"`
	Origin           string        `env:"API_ORIGIN"`
	APIToken         string        `env:"API_TOKEN"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	HealthInterval   time.Duration `env:"HEALTH_INTERVAL,default=30s"`

	Firebase FirebaseConfig
	App      AppConfig
	Features Features
	UI       UIConfig
}

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// LoadConfig reads the optional .env files then the process environment.
// Variables already set in the environment are never overridden by a file.
func LoadConfig(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
	}
	cfg.applyFallbacks()
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFallbacks treats an empty variable like an unset one, so that
// REACT_APP_API_BASE_URL= still falls back to API_BASE_URL, then the default.
func (c *Config) applyFallbacks() {
	c.APIBaseURL = lo.CoalesceOrEmpty(
		os.Getenv("REACT_APP_API_BASE_URL"),
		os.Getenv("API_BASE_URL"),
		defaultBaseURL,
	)
	c.App.Name = lo.CoalesceOrEmpty(c.App.Name, defaultAppName)
	c.App.Version = lo.CoalesceOrEmpty(c.App.Version, defaultAppVersion)
	c.App.Environment = lo.CoalesceOrEmpty(c.App.Environment, defaultEnvironment)
	c.UI.Theme = lo.CoalesceOrEmpty(c.UI.Theme, defaultTheme)
	c.UI.Language = lo.CoalesceOrEmpty(c.UI.Language, defaultLanguage)
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API base URL must be an absolute http(s) URL, got %q", errs.ErrInvalidConfig, c.APIBaseURL)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("%w: MESSAGES_LIMIT must be positive, got %d", errs.ErrInvalidConfig, c.DefaultLimit)
	}
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("%w: MAX_MESSAGE_LENGTH must be positive, got %d", errs.ErrInvalidConfig, c.MaxMessageLength)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive, got %s", errs.ErrInvalidConfig, c.RequestTimeout)
	}
	if c.HealthInterval <= 0 {
		return fmt.Errorf("%w: HEALTH_INTERVAL must be positive, got %s", errs.ErrInvalidConfig, c.HealthInterval)
	}
	if !lo.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: LOG_LEVEL must be one of %v, got %q", errs.ErrInvalidConfig, logLevels, c.LogLevel)
	}
	return nil
}

// NotificationsEnabled reports whether FCM push notifications can be sent.
func (c Config) NotificationsEnabled() bool {
	return c.Features.RealTimeMessaging && c.Firebase.ProjectID != ""
}
