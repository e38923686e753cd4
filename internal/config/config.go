// Package config resolves verline settings from flags, environment, the
// config file and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/verline/internal/appdir"
)

// EnvPrefix is prepended to every key when reading environment variables,
// e.g. VERLINE_BANNER=true.
const EnvPrefix = "VERLINE"

// ErrUnknownKey is returned when a config key is not recognised.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the fully-resolved verline configuration.
type Config struct {
	ConfigFile string `mapstructure:"-"`

	// Verbose switches logging to debug level.
	Verbose bool `mapstructure:"verbose"`

	// Banner logs the version line before a subcommand runs.
	Banner bool `mapstructure:"banner"`
}

// keys lists every settable key. All of them are booleans.
var keys = map[string]struct{}{
	"verbose": {},
	"banner":  {},
}

// RegisterFlags adds the global verline flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: <user config dir>/verline/config.yaml)")
	fs.BoolP("verbose", "v", false, "enable verbose logging (debug level)")
	fs.Bool("banner", false, "log the version banner before running a command")
}

// Load reads the config file named by --config (or the default path) and
// overlays environment variables and changed flags from fs.
// A missing config file is created empty with 0600 permissions.
func Load(fs *pflag.FlagSet) (*Config, error) {
	path, err := fs.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	}
	if path == "" {
		if path, err = appdir.ConfigFile(); err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
	}
	if err := appdir.EnsureFile(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("verbose", false)
	v.SetDefault("banner", false)

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = path
	return &cfg, nil
}

// ValidKeys returns every recognised config key in sorted order.
func ValidKeys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NormalizeKey converts hyphenated flag names to their viper key
// equivalents, e.g. "some-key" to "some_key".
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// ValidateKey returns ErrUnknownKey if key is not a recognised config key.
func ValidateKey(key string) error {
	if _, ok := keys[NormalizeKey(key)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// ParseValue converts a raw string into the typed value stored under key.
func ParseValue(key, value string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for %s: must be true or false", value, key)
	}
	return b, nil
}
