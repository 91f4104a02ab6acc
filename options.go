package localemerge

import (
	"github.com/rs/zerolog"

	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/logging"
	"github.com/menuboard/localemerge/pkg/merge"
	"github.com/menuboard/localemerge/pkg/reconcile"
)

// Option is a function that configures a Client.
type Option func(*options) error

// options holds the client-wide configuration.
type options struct {
	logger   *zerolog.Logger
	script   reconcile.ScriptDetector
	defaults []merge.Option
}

func defaults() *options {
	return &options{
		logger: logging.Default(),
		script: reconcile.ContainsArabic,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger configures the logger used by the pipeline and merge engine.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithScriptDetector replaces the target-script test. The default detects
// the Arabic block.
func WithScriptDetector(detect reconcile.ScriptDetector) Option {
	return func(o *options) error {
		if detect == nil {
			return errors.NewValidationError("script", nil, "script detector must not be nil")
		}
		o.script = detect
		return nil
	}
}

// WithMergeDefaults configures merge options applied before the options of
// each Merge call.
func WithMergeDefaults(opts ...merge.Option) Option {
	return func(o *options) error {
		o.defaults = append(o.defaults, opts...)
		return nil
	}
}
