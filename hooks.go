package localemerge

import (
	"sync"

	"github.com/menuboard/localemerge/pkg/reconcile"
)

// Hook function types for merge records
type (
	// AdditionHook is called for each key copied from incoming
	AdditionHook func(reconcile.Addition)

	// UpdateHook is called for each base value replaced or extended
	UpdateHook func(reconcile.Update)

	// ConflictHook is called for each node kept as base for review
	ConflictHook func(reconcile.Conflict)
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*client)(nil)

// Hooks registers callbacks for merge records.
type Hooks interface {
	OnAddition(AdditionHook)
	OnUpdate(UpdateHook)
	OnConflict(ConflictHook)
}

// OnAddition registers a callback for additions.
func (c *client) OnAddition(fn AdditionHook) { c.hooks.OnAddition(fn) }

// OnUpdate registers a callback for updates.
func (c *client) OnUpdate(fn UpdateHook) { c.hooks.OnUpdate(fn) }

// OnConflict registers a callback for conflicts.
func (c *client) OnConflict(fn ConflictHook) { c.hooks.OnConflict(fn) }

// hooks manages event callbacks for merge records
type hooks struct {
	mu         sync.RWMutex
	onAddition []AdditionHook
	onUpdate   []UpdateHook
	onConflict []ConflictHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnAddition registers a callback for additions
func (h *hooks) OnAddition(fn AdditionHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAddition = append(h.onAddition, fn)
}

// OnUpdate registers a callback for updates
func (h *hooks) OnUpdate(fn UpdateHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUpdate = append(h.onUpdate, fn)
}

// OnConflict registers a callback for conflicts
func (h *hooks) OnConflict(fn ConflictHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onConflict = append(h.onConflict, fn)
}

// trigger replays the changeset through the registered hooks, each log in
// merge order.
func (h *hooks) trigger(changes *reconcile.Changeset) {
	if changes == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, a := range changes.Additions {
		for _, hook := range h.onAddition {
			hook(a)
		}
	}
	for _, u := range changes.Updates {
		for _, hook := range h.onUpdate {
			hook(u)
		}
	}
	for _, c := range changes.Conflicts {
		for _, hook := range h.onConflict {
			hook(c)
		}
	}
}
