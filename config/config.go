package config

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)

const (
	DefaultByteOrder = ByteOrderLittle
	DefaultWorkers   = 4

	MaxWorkers = 256

	// EnvPrefix is the prefix of environment variables overriding config file values,
	// e.g. BITFRAME_ALIGN_FRAMES=true.
	EnvPrefix = "BITFRAME"
)

type Config struct {
	// ByteOrder of the header fields.
	ByteOrder string `mapstructure:"byte-order"`

	// AlignFrames pads every frame to a byte boundary, as done by the video
	// preprocessor, instead of packing frames back to back.
	AlignFrames bool `mapstructure:"align-frames"`

	// StrictGeometry requires the width and height passed to LoadFrame to equal the
	// header values. When disabled only their product has to match.
	StrictGeometry bool `mapstructure:"strict-geometry"`

	// Workers bounds the number of concurrent decodes in LoadFrames.
	Workers uint `mapstructure:"workers"`
}

func DefaultConfig() Config {
	return Config{
		ByteOrder:      DefaultByteOrder,
		AlignFrames:    false,
		StrictGeometry: true,
		Workers:        DefaultWorkers,
	}
}

func (cfg Config) Validate() error {
	switch strings.ToLower(cfg.ByteOrder) {
	case ByteOrderLittle, ByteOrderBig:
	default:
		return fmt.Errorf("invalid `ByteOrder`; expected: %q or %q, given: %q", ByteOrderLittle, ByteOrderBig, cfg.ByteOrder)
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("invalid `Workers`; expected: >= 1, given: %d", cfg.Workers)
	}

	if cfg.Workers > MaxWorkers {
		return fmt.Errorf("invalid `Workers`; expected: <= %d, given: %d", MaxWorkers, cfg.Workers)
	}

	return nil
}

// Order returns the binary.ByteOrder for the configured header byte order.
func (cfg Config) Order() binary.ByteOrder {
	if strings.ToLower(cfg.ByteOrder) == ByteOrderBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Load reads the config file at path on top of the defaults. Environment variables
// with the EnvPrefix prefix take precedence over the file. An empty path loads
// the defaults and the environment only.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	// AutomaticEnv only applies to known keys.
	vip.SetDefault("byte-order", cfg.ByteOrder)
	vip.SetDefault("align-frames", cfg.AlignFrames)
	vip.SetDefault("strict-geometry", cfg.StrictGeometry)
	vip.SetDefault("workers", cfg.Workers)

	if path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file (%v): %w", path, err)
		}
	}

	if err := vip.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
