package engine

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/core/maker"
	"github.com/matzehuels/caliper/pkg/observability"
)

// Memory tracks active constraints in process.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	active map[*constraint.Constraint]struct{}
	order  []*constraint.Constraint
	logger *log.Logger
}

// New returns an empty engine. A nil logger discards output.
func New(logger *log.Logger) *Memory {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Memory{
		active: make(map[*constraint.Constraint]struct{}),
		logger: logger,
	}
}

// Activate validates every constraint in cs and installs them. If any
// constraint is invalid nothing is installed. Already active constraints
// are skipped.
func (e *Memory) Activate(cs []*constraint.Constraint) error {
	for _, c := range cs {
		if err := Validate(c); err != nil {
			e.logger.Warn("rejected constraint batch", "size", len(cs), "err", err)
			observability.Engine().OnReject(err)
			return err
		}
	}

	e.mu.Lock()
	added := 0
	for _, c := range cs {
		if _, ok := e.active[c]; ok {
			continue
		}
		e.active[c] = struct{}{}
		e.order = append(e.order, c)
		added++
	}
	e.mu.Unlock()

	e.logger.Debug("activated constraints", "count", added)
	observability.Engine().OnActivate(added)
	return nil
}

// Deactivate removes the given constraints. Constraints that are not active
// are ignored.
func (e *Memory) Deactivate(cs []*constraint.Constraint) error {
	e.mu.Lock()
	removed := 0
	for _, c := range cs {
		if _, ok := e.active[c]; ok {
			delete(e.active, c)
			removed++
		}
	}
	if removed > 0 {
		e.order = slices.DeleteFunc(e.order, func(c *constraint.Constraint) bool {
			_, ok := e.active[c]
			return !ok
		})
	}
	e.mu.Unlock()

	if removed > 0 {
		e.logger.Debug("deactivated constraints", "count", removed)
		observability.Engine().OnDeactivate(removed)
	}
	return nil
}

// IsActive reports whether c is installed.
func (e *Memory) IsActive(c *constraint.Constraint) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.active[c]
	return ok
}

// Len returns the number of active constraints.
func (e *Memory) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order)
}

// Active returns the active constraints in activation order.
func (e *Memory) Active() []*constraint.Constraint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.order)
}

// Affecting returns the active constraints that mention r on either side.
func (e *Memory) Affecting(r constraint.Region) []*constraint.Constraint {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []*constraint.Constraint
	for _, c := range e.order {
		if c.Item == r || c.SecondItem == r {
			out = append(out, c)
		}
	}
	return out
}

var _ maker.Engine = (*Memory)(nil)
