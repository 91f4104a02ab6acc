package localemerge

import (
	"context"
	"fmt"
	"time"

	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/logging"
	"github.com/menuboard/localemerge/pkg/loose"
	"github.com/menuboard/localemerge/pkg/merge"
	"github.com/menuboard/localemerge/pkg/save"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Compile-time interface check to ensure proper implementation.
var _ Merger = (*client)(nil)

// Merger runs merges.
type Merger interface {
	// Merge reads the base and incoming files, merges them and writes the
	// merged tree and the report unless the run is a dry run.
	Merge(ctx context.Context, opts ...merge.Option) (*merge.Result, error)

	// MergeTrees merges two in-memory trees. Nothing is read or written.
	MergeTrees(ctx context.Context, base, incoming tree.Mapping) (*merge.Result, error)
}

// Merge runs the file pipeline. Hooks fire after the outputs are written,
// and also on dry runs.
func (c *client) Merge(ctx context.Context, opts ...merge.Option) (*merge.Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	// Step 1: Parse and validate options
	all := make([]merge.Option, 0, len(c.options.defaults)+len(opts))
	all = append(all, c.options.defaults...)
	all = append(all, opts...)
	options := merge.NewOptions(all...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Setup context with timeout and logger
	var cancel context.CancelFunc
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	} else {
		cancel = func() {}
	}
	defer cancel()
	ctx = logging.WithLogger(ctx, c.options.logger)
	logger := logging.FromContext(ctx)

	// Step 3: Parse both inputs; either failing aborts the run
	base, err := read(ctx, options.BasePath)
	if err != nil {
		return nil, err
	}
	incoming, err := read(ctx, options.IncomingPath)
	if err != nil {
		return nil, err
	}

	// Step 4: Merge
	result, err := c.run(ctx, base, incoming)
	if err != nil {
		return nil, err
	}
	result.DryRun = options.DryRun
	result.OutputPath = options.OutputPath
	result.ReportPath = options.ReportPath

	// Step 5: Write both outputs, even when conflicts exist
	if options.DryRun {
		logger.Info().Bool("dry_run", true).Msg("Dry run completed - no files written")
	} else {
		if err := checkpoint(ctx); err != nil {
			return nil, err
		}
		if err := c.Save(result.Merged,
			save.WithPath(options.OutputPath),
			save.WithFormat(options.OutputFormat),
		); err != nil {
			return nil, err
		}
		logger.Info().Str("file", options.OutputPath).Str("format", options.OutputFormat.String()).Msg("Merged tree written")

		if err := c.SaveReport(result.Changeset, options.ReportFormat, save.WithPath(options.ReportPath)); err != nil {
			return nil, err
		}
		logger.Info().Str("file", options.ReportPath).Str("format", options.ReportFormat.String()).Msg("Report written")
	}

	// Step 6: Notify hooks
	c.hooks.trigger(result.Changeset)

	result.Duration = time.Since(start)
	return result, nil
}

// MergeTrees merges base and incoming in memory and notifies hooks.
func (c *client) MergeTrees(ctx context.Context, base, incoming tree.Mapping) (*merge.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	ctx = logging.WithLogger(ctx, c.options.logger)

	result, err := c.run(ctx, base, incoming)
	if err != nil {
		return nil, err
	}
	result.DryRun = true

	c.hooks.trigger(result.Changeset)

	result.Duration = time.Since(start)
	return result, nil
}

// run merges two parsed trees and logs the outcome.
func (c *client) run(ctx context.Context, base, incoming tree.Mapping) (*merge.Result, error) {
	if err := checkpoint(ctx); err != nil {
		return nil, err
	}
	if base == nil {
		base = tree.Mapping{}
	}
	if incoming == nil {
		incoming = tree.Mapping{}
	}

	node, changes := c.merger.Merge(base, incoming)
	merged, ok := node.(tree.Mapping)
	if !ok {
		return nil, errors.NewValidationError("merged", node.Kind().String(), "merged root is not a mapping")
	}

	logger := logging.FromContext(ctx)
	if changes.IsEmpty() {
		logger.Info().Msg("No changes detected")
	} else {
		s := changes.Summary()
		logger.Info().
			Int("additions", s.Additions).
			Int("updates", s.Updates).
			Int("conflicts", s.Conflicts).
			Msg("Changes detected")
	}

	return &merge.Result{Merged: merged, Changeset: changes}, nil
}

// read parses one input file.
func read(ctx context.Context, path string) (tree.Mapping, error) {
	if err := checkpoint(ctx); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	t, err := loose.ParseFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("Could not read input")
		return nil, err
	}
	logger.Debug().Str("file", path).Int("keys", len(tree.Paths(t))).Msg("Input parsed")
	return t, nil
}

// checkpoint reports a canceled or expired context.
func checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}
	return nil
}
