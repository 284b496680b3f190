package refs

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const (
	delimiter = "."

	ConfigPrefix = "refs"

	ConfigNumShards   = ConfigPrefix + delimiter + "num_shards"
	ConfigMaxAttempts = ConfigPrefix + delimiter + "max_attempts"
	ConfigKeepHistory = ConfigPrefix + delimiter + "keep_history"
)

const (
	DefaultNumShards   = 16
	DefaultMaxAttempts = 64
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	NumShards   int  // default: 16
	MaxAttempts int  // compare-and-swap attempts per update, default: 64
	KeepHistory bool // link every version to its parent
}

// NewConfig replaces non-positive sizes with their defaults.
func NewConfig(numShards, maxAttempts int, keepHistory bool) Config {
	if numShards <= 0 {
		numShards = DefaultNumShards
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return Config{
		NumShards:   numShards,
		MaxAttempts: maxAttempts,
		KeepHistory: keepHistory,
	}
}

func DefaultConfig() Config {
	return NewConfig(0, 0, false)
}

// ConfigFromMap reads the Config* keys from m. Missing keys take their
// defaults; every mistyped key is reported.
func ConfigFromMap(m map[string]any) (Config, error) {
	var (
		numShards, maxAttempts int
		keepHistory            bool
		errs                   error
	)
	if raw, ok := m[ConfigNumShards]; ok {
		v, isInt := raw.(int)
		if !isInt {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s must be int, got %T", ErrInvalidConfig, ConfigNumShards, raw))
		}
		numShards = v
	}
	if raw, ok := m[ConfigMaxAttempts]; ok {
		v, isInt := raw.(int)
		if !isInt {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s must be int, got %T", ErrInvalidConfig, ConfigMaxAttempts, raw))
		}
		maxAttempts = v
	}
	if raw, ok := m[ConfigKeepHistory]; ok {
		v, isBool := raw.(bool)
		if !isBool {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s must be bool, got %T", ErrInvalidConfig, ConfigKeepHistory, raw))
		}
		keepHistory = v
	}
	if errs != nil {
		return Config{}, errs
	}
	return NewConfig(numShards, maxAttempts, keepHistory), nil
}
