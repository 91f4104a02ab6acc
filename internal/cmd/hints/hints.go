// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"slices"
	"strings"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string   // Human-readable guidance message
	Command string   // Optional specific command to run
	Tags    []string // For filtering
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// WithTags adds tags to the hint.
func (h *Hint) WithTags(tags ...string) *Hint {
	h.Tags = append(h.Tags, tags...)
	return h
}

// HasTag checks if the hint has a specific tag.
func (h *Hint) HasTag(tag string) bool {
	return slices.Contains(h.Tags, tag)
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	s := "hint: " + h.Message
	if h.Command != "" {
		s += fmt.Sprintf("\n   Run: %s", h.Command)
	}
	return s
}

// Context describes the finished operation hints are generated for.
type Context struct {
	Command   string // Command that ran
	Succeeded bool
	DryRun    bool
	Conflicts int
	Base      string
	Incoming  string
	Report    string
}

// ProviderFunc generates hints for a context.
type ProviderFunc func(Context) []*Hint

// Registry collects hint providers.
type Registry struct {
	providers   []ProviderFunc
	MaxHints    int
	ExcludeTags []string
}

// NewRegistry creates an empty registry returning at most three hints.
func NewRegistry() *Registry {
	return &Registry{MaxHints: 3}
}

// Default returns a registry with the standard providers registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(mergeHints)
	return r
}

// Register adds a provider.
func (r *Registry) Register(fn ProviderFunc) {
	r.providers = append(r.providers, fn)
}

// GetHints generates hints for the given context, in registration order.
func (r *Registry) GetHints(ctx Context) []*Hint {
	var out []*Hint
	for _, p := range r.providers {
		for _, h := range p(ctx) {
			if r.excluded(h) {
				continue
			}
			out = append(out, h)
		}
	}
	if r.MaxHints > 0 && len(out) > r.MaxHints {
		out = out[:r.MaxHints]
	}
	return out
}

func (r *Registry) excluded(h *Hint) bool {
	for _, tag := range r.ExcludeTags {
		if h.HasTag(tag) {
			return true
		}
	}
	return false
}

// Format renders hints one per paragraph. It returns "" for no hints.
func Format(hints []*Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = h.String()
	}
	return strings.Join(parts, "\n") + "\n"
}

func mergeHints(ctx Context) []*Hint {
	if ctx.Command != "merge" || !ctx.Succeeded {
		return nil
	}

	var hints []*Hint
	if ctx.DryRun {
		hints = append(hints, NewCommand(
			"Nothing was written. Run again without --dry-run to write the merged tree and report",
			fmt.Sprintf("localemerge merge %s %s", ctx.Base, ctx.Incoming),
		).WithTags("next-step"))
	}
	if ctx.Conflicts > 0 && !ctx.DryRun {
		hints = append(hints, New(
			fmt.Sprintf("%d conflicts kept the base value; review them in %s", ctx.Conflicts, ctx.Report),
		).WithTags("review"))
	}
	return hints
}
