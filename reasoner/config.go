package reasoner

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config tunes the engine via a YAML-driven service config, loaded once
// at startup and passed down through constructors rather than being
// rediscovered per call.
type Config struct {
	// DefaultProfile names an OWL 2 profile ("EL" in DefaultConfig). It is
	// loaded with the rest of the config, but no code in this module reads
	// it: every profile check names its profile explicitly.
	DefaultProfile string `yaml:"default_profile"`
	// MaxBacktracks bounds the engine's work: once its expansion loop has
	// run more than 8*MaxBacktracks iterations without reaching a fixed
	// point, it gives up and reports a LogicalError instead of looping
	// forever.
	MaxBacktracks int `yaml:"max_backtracks"`
	// Workers bounds the goroutine pool classify/realize fan out across.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the tuning the engine uses when no YAML file is
// supplied.
func DefaultConfig() Config {
	return Config{
		DefaultProfile: "EL",
		MaxBacktracks:  1_000_000,
		Workers:        0,
	}
}

// LoadConfig reads tuning options from a YAML file, the way a service's
// startup config is loaded. Missing fields keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
