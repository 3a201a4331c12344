// Package config loads runtime settings
// Precedence, lowest first: built-in defaults, impcton.toml, IMPCTON_*
// environment variables, command-line flags applied by the caller
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix is prepended to every environment override
	EnvPrefix = "IMPCTON"

	// DefaultFile is the config file looked up when none is given
	DefaultFile = "impcton.toml"

	// DefaultWalletEndpoint is a local node or wallet bridge
	DefaultWalletEndpoint = "http://127.0.0.1:8545"

	stateDir = ".impcton"
)

// Duration accepts "1h30m" style strings in TOML and environment values
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full runtime configuration
type Config struct {
	Cooldown     Duration `toml:"cooldown" split_words:"true"`
	SpinDuration Duration `toml:"spin_duration" split_words:"true"`
	Segments     []int    `toml:"segments" split_words:"true"`
	Seed         uint64   `toml:"seed" split_words:"true"` // 0 seeds from the clock

	StoreBackend string `toml:"store" split_words:"true"`
	StorePath    string `toml:"store_path" split_words:"true"` // empty picks a per-backend default

	AudioEnabled bool    `toml:"audio" split_words:"true"`
	MasterVolume float64 `toml:"volume" split_words:"true"`

	WalletEndpoint string   `toml:"wallet_endpoint" split_words:"true"`
	WalletTimeout  Duration `toml:"wallet_timeout" split_words:"true"`

	InitialBalance int64 `toml:"initial_balance" split_words:"true"`
	Debug          bool  `toml:"debug" split_words:"true"`
}

// Default returns the built-in configuration
func Default() Config {
	segs := make([]int, len(constants.DefaultSegmentValues))
	copy(segs, constants.DefaultSegmentValues)

	return Config{
		Cooldown:       Duration{constants.SpinCooldown},
		SpinDuration:   Duration{constants.SpinDuration},
		Segments:       segs,
		StoreBackend:   storage.BackendFile,
		AudioEnabled:   true,
		MasterVolume:   0.5,
		WalletEndpoint: DefaultWalletEndpoint,
		WalletTimeout:  Duration{constants.WalletRequestTimeout},
	}
}

// Load builds a config from defaults, the TOML file at path and the environment
// A missing file is ignored unless required is set
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path, required); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate rejects settings the wheel cannot run with
func (c Config) Validate() error {
	if c.Cooldown.Duration <= 0 {
		return errors.Newf("config: cooldown must be positive, got %s", c.Cooldown.Duration)
	}
	if c.SpinDuration.Duration <= 0 {
		return errors.Newf("config: spin duration must be positive, got %s", c.SpinDuration.Duration)
	}
	if c.WalletTimeout.Duration <= 0 {
		return errors.Newf("config: wallet timeout must be positive, got %s", c.WalletTimeout.Duration)
	}
	if len(c.Segments) == 0 {
		return errors.New("config: at least one segment required")
	}
	for i, v := range c.Segments {
		if v <= 0 {
			return errors.Newf("config: segment %d has non-positive value %d", i, v)
		}
	}
	switch c.StoreBackend {
	case storage.BackendMemory, storage.BackendFile, storage.BackendSQLite:
	default:
		return errors.Newf("config: unknown store backend %q", c.StoreBackend)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return errors.Newf("config: volume must be within [0, 1], got %v", c.MasterVolume)
	}
	if c.InitialBalance < 0 {
		return errors.Newf("config: initial balance must not be negative, got %d", c.InitialBalance)
	}
	return nil
}

// ResolvedStorePath returns StorePath or the backend's default location under the home directory
func (c Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}

	name := "state.json"
	if c.StoreBackend == storage.BackendSQLite {
		name = "state.db"
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(stateDir, name)
	}
	return filepath.Join(home, stateDir, name)
}
