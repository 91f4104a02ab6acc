// Package merge provides options and results for a single merge run.
package merge

import (
	"time"

	"github.com/menuboard/localemerge/pkg/constants"
	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/report"
	"github.com/menuboard/localemerge/pkg/save"
)

// Options controls one parse, merge, serialize and report run.
type Options struct {
	// Inputs
	BasePath     string // Authoritative tree
	IncomingPath string // Candidate revision

	// Outputs
	OutputPath   string        // Where the merged tree is written
	ReportPath   string        // Where the report is written
	OutputFormat save.Format   // Merged tree encoding
	ReportFormat report.Format // Report encoding

	// Run control
	DryRun  bool          // Compute everything, write nothing
	Timeout time.Duration // Timeout for the whole run (0 means none)
}

// Apply applies the given options to the merge options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Defaults returns the default merge options.
func Defaults() *Options {
	return &Options{
		BasePath:     constants.DefaultBasePath,
		IncomingPath: constants.DefaultIncomingPath,
		OutputPath:   constants.DefaultOutputPath,
		ReportPath:   constants.DefaultReportPath,
		OutputFormat: save.FormatJSON,
		ReportFormat: report.FormatMarkdown,
		DryRun:       false,
		Timeout:      0,
	}
}

// NewOptions returns the defaults with opts applied.
func NewOptions(opts ...Option) *Options {
	return Defaults().Apply(opts...)
}

// Option is a function that configures merge Options.
type Option func(*Options)

// Validate checks if the merge options are usable.
func (o *Options) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"BasePath", o.BasePath},
		{"IncomingPath", o.IncomingPath},
		{"OutputPath", o.OutputPath},
		{"ReportPath", o.ReportPath},
	}
	for _, r := range required {
		if r.value == "" {
			return &errors.ValidationError{
				Field:   r.field,
				Value:   r.value,
				Message: "path must not be empty",
			}
		}
	}

	if o.OutputPath == o.ReportPath {
		return &errors.ValidationError{
			Field:   "ReportPath",
			Value:   o.ReportPath,
			Message: "report path must differ from output path",
		}
	}

	if !o.OutputFormat.IsValid() {
		return errors.NewConfigError("output", "unsupported format "+o.OutputFormat.String(), nil)
	}

	if !o.ReportFormat.IsValid() {
		return errors.NewConfigError("report", "unsupported format "+o.ReportFormat.String(), nil)
	}

	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}

	return nil
}

// WithBasePath sets the base tree path.
func WithBasePath(path string) Option {
	return func(o *Options) {
		o.BasePath = path
	}
}

// WithIncomingPath sets the incoming tree path.
func WithIncomingPath(path string) Option {
	return func(o *Options) {
		o.IncomingPath = path
	}
}

// WithOutputPath sets where the merged tree is written.
func WithOutputPath(path string) Option {
	return func(o *Options) {
		o.OutputPath = path
	}
}

// WithReportPath sets where the report is written.
func WithReportPath(path string) Option {
	return func(o *Options) {
		o.ReportPath = path
	}
}

// WithOutputFormat sets the merged tree encoding.
func WithOutputFormat(f save.Format) Option {
	return func(o *Options) {
		o.OutputFormat = f
	}
}

// WithReportFormat sets the report encoding.
func WithReportFormat(f report.Format) Option {
	return func(o *Options) {
		o.ReportFormat = f
	}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// WithTimeout configures the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}
