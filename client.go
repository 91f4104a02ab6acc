// Package localemerge provides the main entry point for reconciling a base
// translation tree with an incoming revision.
//
// A run parses both inputs, merges them with base taking precedence,
// writes the merged tree in canonical form and writes a report of every
// addition, update and conflict. Conflicts never fail a run; only input
// that cannot be parsed or output that cannot be written does.
//
// Example usage:
//
//	lm, err := localemerge.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lm.OnConflict(func(c reconcile.Conflict) {
//	    log.Printf("review %s: %s", c.Path, c.Reason)
//	})
//
//	result, err := lm.Merge(ctx,
//	    merge.WithBasePath("locales/ar.json"),
//	    merge.WithIncomingPath("locales/ar.new.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package localemerge

import (
	"github.com/menuboard/localemerge/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client runs merges and notifies registered hooks of their outcome.
type Client interface {

	// Merger runs the file pipeline and in-memory merges
	Merger

	// Persistence writes merged trees and reports
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// merger holds the configured merge engine; it keeps no state between runs
	merger *reconcile.Merger

	// hooks are notified once per record after each merge
	hooks *hooks
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	return &client{
		options: o,
		merger: reconcile.New(
			reconcile.WithLogger(o.logger),
			reconcile.WithScriptDetector(o.script),
		),
		hooks: newHooks(),
	}, nil
}
