package userauth

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

// envPrefix namespaces the environment overrides, e.g. AUTH_SIGNING_SECRET.
const envPrefix = "AUTH_"

// Config is the process-wide configuration, constructed once at startup and
// passed by reference into the services that need it. The signing secret has
// no default and never appears in logs or tokens.
type Config struct {
	ListenAddr    string `koanf:"listen_addr"`
	DatabaseDSN   string `koanf:"database_dsn"`
	SigningSecret string `koanf:"signing_secret"`
	Issuer        string `koanf:"issuer"`
	BcryptCost    int    `koanf:"bcrypt_cost"`
	HashWorkers   int    `koanf:"hash_workers"`
	TokenTTLHours int    `koanf:"token_ttl_hours"`
	ContextKey    string `koanf:"context_key"`
}

// DefaultConfig returns the baseline configuration. TokenTTLHours defaults to
// zero: issued tokens carry no expiry unless an operator opts in.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  ":3000",
		DatabaseDSN: "file:userauth.db?cache=shared",
		BcryptCost:  DefaultBcryptCost,
		ContextKey:  "auth_user",
	}
}

// Validate will run validation rules
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SigningSecret, validation.Required),
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.DatabaseDSN, validation.Required),
		validation.Field(&c.BcryptCost, validation.Min(bcrypt.MinCost), validation.Max(bcrypt.MaxCost)),
		validation.Field(&c.TokenTTLHours, validation.Min(0)),
	)
}

// LoadConfig builds the configuration from defaults, an optional YAML file,
// and AUTH_* environment overrides, in that precedence order.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, errors.Wrap(err, errors.CategoryInternal, "failed to load config file")
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return cfg, errors.Wrap(err, errors.CategoryInternal, "failed to load environment config")
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, errors.Wrap(err, errors.CategoryInternal, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, errors.CategoryValidation, "invalid configuration")
	}

	return cfg, nil
}
