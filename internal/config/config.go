// Package config decodes the engine's optional engine.toml, following
// the same BurntSushi/toml decode-into-struct pattern the teacher uses
// for its own schema format (internal/parser/toml in Pieczasz-smf).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every engine.toml setting (spec SPEC_FULL.md "AMBIENT
// STACK / Configuration"). A missing file is not an error: Load returns
// Default() unchanged.
type Config struct {
	DataDir             string `toml:"data_dir"`
	DefaultVarcharLimit int    `toml:"default_varchar_limit"`
	StrictMode          bool   `toml:"strict_mode"`
}

// Default returns the configuration the engine runs with when
// engine.toml is absent.
func Default() Config {
	return Config{
		DataDir:             "data",
		DefaultVarcharLimit: 255,
		StrictMode:          false,
	}
}

// Load decodes path into a Config seeded with Default() values, so any
// field the file omits keeps its default. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}
