package conllu

import "log/slog"

// Option configures a Corrector.
type Option func(*config)

type config struct {
	suffix string
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		suffix: "_updated",
		logger: slog.Default(),
	}
}

// WithSuffix sets the infix inserted before the .conllu extension of
// output filenames (default: "_updated").
func WithSuffix(s string) Option {
	return func(c *config) {
		if s != "" {
			c.suffix = s
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
