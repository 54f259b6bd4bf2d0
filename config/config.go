package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "25M"

	defaultSessionTTL           = 7 * 24 * time.Hour
	defaultSessionSweepInterval = time.Hour
	defaultSignedURLTTL         = time.Hour
	defaultMaxUploadBytes       = 20 << 20 // 20 MiB
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Content struct {
		// Driver selects the content store backend: "postgres" (default)
		// or "memory" for running without seeded content tables.
		Driver string `json:"driver" yaml:"driver"`
	} `json:"content" yaml:"content"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines session persistence and cookie behaviour.
type SessionConfig struct {
	// TTL is the lifetime of a session from its last Set.
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// SweepInterval is how often expired rows are batch-deleted.
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	CookieName   string `json:"cookieName" yaml:"cookieName"`
	CookieDomain string `json:"cookieDomain" yaml:"cookieDomain"`

	// CookieSecure forces the Secure flag. When nil the flag is derived
	// from the deployment platform (see SecureCookies).
	CookieSecure *bool `json:"cookieSecure" yaml:"cookieSecure"`
}

// SecureCookies reports whether session cookies should carry the Secure flag.
func (c *SessionConfig) SecureCookies(env string) bool {
	if c != nil && c.CookieSecure != nil {
		return *c.CookieSecure
	}
	if strings.EqualFold(env, "production") {
		return true
	}
	// Hosted platforms terminate TLS in front of the process.
	for _, v := range []string{"RENDER", "FLY_APP_NAME", "RAILWAY_ENVIRONMENT"} {
		if os.Getenv(v) != "" {
			return true
		}
	}

	return false
}

// StorageConfig defines the object storage bucket holding admission documents.
type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "gs://campus-documents"
	// or "file:///var/data/documents" for development.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prepended to object keys to form the stable
	// reference stored on admission records.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// SignedURLTTL bounds the validity of admin download links.
	SignedURLTTL time.Duration `json:"signedUrlTtl" yaml:"signedUrlTtl"`

	// MaxUploadBytes is the hard cap on a single uploaded document.
	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// AdminSeed provisions the first admin account at startup. Left unset,
	// no account is seeded and sign-in relies on existing rows.
	AdminSeed *AdminSeedConfig `json:"adminSeed" yaml:"adminSeed"`
}

// AdminSeedConfig describes the bootstrap admin account.
type AdminSeedConfig struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STORAGE_BUCKETURL -> storage.bucketUrl (not storage.bucketurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = defaultSessionSweepInterval
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "campus_session"
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.SignedURLTTL <= 0 {
		cfg.Storage.SignedURLTTL = defaultSignedURLTTL
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.Content.Driver == "" {
		cfg.Content.Driver = "postgres"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
