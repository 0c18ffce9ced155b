package maker

import "github.com/matzehuels/caliper/pkg/core/constraint"

// Element is a region that can be the target of a maker.
type Element interface {
	constraint.Region

	// SetTranslatesAutoresizing toggles the host's implicit
	// frame-to-constraint translation. Make disables it before installing
	// explicit constraints.
	SetTranslatesAutoresizing(enabled bool)

	// ConstraintStore returns the element's store, creating it on first use.
	// The store lives exactly as long as the element.
	ConstraintStore() *Store
}

// Engine installs and removes constraints in the live layout computation.
type Engine interface {
	// Activate installs a batch. Implementations must install either the
	// whole batch or nothing.
	Activate(cs []*constraint.Constraint) error

	// Deactivate removes a batch. Constraints that are not active are
	// ignored.
	Deactivate(cs []*constraint.Constraint) error
}
