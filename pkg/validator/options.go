package validator

import "log/slog"

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used to report skipped registrations and failed
// checks. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}
