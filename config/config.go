// Package config resolves runtime options from defaults, a TOML file, and flags.
//
// Rendering constants are not configurable, only how frames are produced
// and delivered.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Shading variants
const (
	VariantFlat = "flat"
	VariantLit  = "lit"
)

// Output backends
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidValue   = errors.New("invalid value")
)

// Config holds the resolved runtime options
type Config struct {
	Variant string `toml:"variant"`
	Backend string `toml:"backend"`
	// Workers: 0 sequential, -1 GOMAXPROCS, n goroutines
	Workers int `toml:"workers"`
	// Frames: 0 runs until terminated
	Frames int  `toml:"frames"`
	Debug  bool `toml:"debug"`
	// NapMS sleeps between clock samples of the lit variant, 0 busy-waits
	NapMS int `toml:"nap_ms"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Variant: VariantLit,
		Backend: BackendANSI,
	}
}

// Validate rejects values the process cannot run with
func (c Config) Validate() error {
	switch c.Variant {
	case VariantFlat, VariantLit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Workers < -1 {
		return fmt.Errorf("%w: workers %d", ErrInvalidValue, c.Workers)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d", ErrInvalidValue, c.Frames)
	}
	if c.NapMS < 0 {
		return fmt.Errorf("%w: nap_ms %d", ErrInvalidValue, c.NapMS)
	}
	return nil
}

// LoadFile overlays values from a TOML file onto c
// Unknown keys are an error so typos do not pass silently
func LoadFile(path string, c *Config) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidValue, path, strings.Join(keys, ", "))
	}
	return nil
}

// Load resolves defaults, then the -config file, then explicitly set flags
func Load(args []string, output io.Writer) (Config, error) {
	def := Default()

	fs := flag.NewFlagSet("raymarch", flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", "", "TOML config file")
	variant := fs.String("variant", def.Variant, "Shading: flat, lit")
	backend := fs.String("backend", def.Backend, "Output: ansi, tcell")
	workers := fs.Int("workers", def.Workers, "Render goroutines: 0 sequential, -1 all cores")
	frames := fs.Int("frames", def.Frames, "Stop after N frames, 0 runs forever")
	debug := fs.Bool("debug", def.Debug, "Write debug log to logs/")
	nap := fs.Int("nap-ms", def.NapMS, "Sleep between clock samples in lit pacing, 0 busy-waits")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *path != "" {
		if err := LoadFile(*path, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "backend":
			cfg.Backend = *backend
		case "workers":
			cfg.Workers = *workers
		case "frames":
			cfg.Frames = *frames
		case "debug":
			cfg.Debug = *debug
		case "nap-ms":
			cfg.NapMS = *nap
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
