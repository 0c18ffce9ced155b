package view

import (
	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/core/maker"
)

// Guide is a named layout region with no rendering of its own, positioned
// relative to its owning view.
type Guide struct {
	constraint.Anchors

	name  string
	owner *View
	store *maker.Store
}

// Name returns the guide name.
func (g *Guide) Name() string { return g.name }

// Owner returns the view that owns the guide.
func (g *Guide) Owner() *View { return g.owner }

// Container returns the owning view.
func (g *Guide) Container() constraint.Region {
	if g.owner == nil {
		return nil
	}
	return g.owner
}

// SetTranslatesAutoresizing implements maker.Element. Guides never translate
// frames, so it does nothing.
func (g *Guide) SetTranslatesAutoresizing(bool) {}

// ConstraintStore implements maker.Element.
func (g *Guide) ConstraintStore() *maker.Store {
	if g.store == nil {
		g.store = maker.NewStore()
	}
	return g.store
}

var _ maker.Element = (*Guide)(nil)
