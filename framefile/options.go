package framefile

import (
	"errors"

	"go.uber.org/zap"

	"github.com/bitframe/bitframe/config"
)

type option struct {
	cfg    config.Config
	logger *zap.Logger
}

func (o *option) validate() error {
	return o.cfg.Validate()
}

type OptionFunc func(*option) error

// WithConfig sets the decoding config. Defaults to config.DefaultConfig().
func WithConfig(cfg config.Config) OptionFunc {
	return func(o *option) error {
		o.cfg = cfg
		return nil
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}
