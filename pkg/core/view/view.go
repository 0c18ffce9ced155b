package view

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/core/maker"
	"github.com/matzehuels/caliper/pkg/errors"
)

// View is a rectangular element in a container tree.
type View struct {
	constraint.Anchors

	id        uuid.UUID
	name      string
	parent    *View
	subviews  []*View
	guides    []*Guide
	store     *maker.Store
	destroyed bool

	// translatesAutoresizing mirrors the host flag; new views start with
	// implicit frame translation enabled.
	translatesAutoresizing bool
}

// New returns a detached view. An empty name is replaced by one derived from
// the view's ID.
func New(name string) *View {
	id := uuid.New()
	if name == "" {
		name = "view-" + id.String()[:8]
	}
	v := &View{id: id, name: name, translatesAutoresizing: true}
	v.Anchors = constraint.AnchorsOf(v)
	return v
}

// ID returns the view's unique identity.
func (v *View) ID() uuid.UUID { return v.id }

// Name returns the display name.
func (v *View) Name() string { return v.name }

// Container returns the superview, or nil for a detached view.
func (v *View) Container() constraint.Region {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// Superview returns the containing view, or nil.
func (v *View) Superview() *View { return v.parent }

// Subviews returns the direct children in insertion order.
func (v *View) Subviews() []*View { return slices.Clone(v.subviews) }

// Guides returns the guides owned by v.
func (v *View) Guides() []*Guide { return slices.Clone(v.guides) }

// IsDestroyed reports whether Destroy has been called.
func (v *View) IsDestroyed() bool { return v.destroyed }

// TranslatesAutoresizing reports whether implicit frame translation is on.
func (v *View) TranslatesAutoresizing() bool { return v.translatesAutoresizing }

// SetTranslatesAutoresizing implements maker.Element.
func (v *View) SetTranslatesAutoresizing(enabled bool) { v.translatesAutoresizing = enabled }

// ConstraintStore implements maker.Element. The store is created on first
// use.
func (v *View) ConstraintStore() *maker.Store {
	if v.store == nil {
		v.store = maker.NewStore()
	}
	return v.store
}

// AddSubview attaches child to v, detaching it from any previous superview.
func (v *View) AddSubview(child *View) error {
	switch {
	case child == nil:
		return errors.New(errors.ErrCodeInvalidInput, "add subview to %s: nil view", v.name)
	case v.destroyed || child.destroyed:
		return errors.New(errors.ErrCodeInvalidInput, "add %s to %s: destroyed view", child.name, v.name)
	case child == v || child.isAncestorOf(v):
		return errors.New(errors.ErrCodeInvalidInput, "add %s to %s: would create a cycle", child.name, v.name)
	}
	child.RemoveFromSuperview()
	child.parent = v
	v.subviews = append(v.subviews, child)
	return nil
}

// RemoveFromSuperview detaches v. It is a no-op for detached views.
func (v *View) RemoveFromSuperview() {
	if v.parent == nil {
		return
	}
	p := v.parent
	if i := slices.Index(p.subviews, v); i >= 0 {
		p.subviews = slices.Delete(p.subviews, i, i+1)
	}
	v.parent = nil
}

// AddGuide creates a named layout guide positioned relative to v.
func (v *View) AddGuide(name string) *Guide {
	g := &Guide{name: name, owner: v}
	g.Anchors = constraint.AnchorsOf(g)
	v.guides = append(v.guides, g)
	return g
}

// Find returns the first view named name in v's subtree (v included), or nil.
func (v *View) Find(name string) *View {
	var found *View
	v.Walk(func(n *View) bool {
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits v and its descendants depth-first, parents before children,
// until fn returns false.
func (v *View) Walk(fn func(*View) bool) {
	v.walk(fn)
}

func (v *View) walk(fn func(*View) bool) bool {
	if !fn(v) {
		return false
	}
	for _, c := range v.subviews {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Destroy detaches v, destroys its subtree and releases every owned store.
// Active constraints are not deactivated; tear them down first.
func (v *View) Destroy() {
	v.RemoveFromSuperview()
	for _, c := range slices.Clone(v.subviews) {
		c.Destroy()
	}
	for _, g := range v.guides {
		g.store = nil
	}
	v.guides = nil
	v.store = nil
	v.destroyed = true
}

func (v *View) isAncestorOf(other *View) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == v {
			return true
		}
	}
	return false
}

var _ maker.Element = (*View)(nil)
