package maker

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/errors"
)

// Maker accumulates attribute selections on one target element and turns
// them into constraints through terminal operations.
//
// A Maker lives for the duration of one configuration closure. It is not
// safe for concurrent use.
type Maker struct {
	target   Element
	pending  []constraint.Ref
	produced []*constraint.Constraint
	last     []int // indices into produced from the latest terminal call
	err      error
	logger   *log.Logger
}

func newMaker(target Element, logger *log.Logger) *Maker {
	return &Maker{target: target, logger: logger}
}

// Target returns the element being configured.
func (m *Maker) Target() Element { return m.target }

// Err returns the first error recorded by the maker, if any.
func (m *Maker) Err() error { return m.err }

// Constraints returns the constraints produced so far, in order.
func (m *Maker) Constraints() []*constraint.Constraint {
	out := make([]*constraint.Constraint, len(m.produced))
	copy(out, m.produced)
	return out
}

// =============================================================================
// Attribute selection
// =============================================================================

func (m *Maker) Left() *Maker     { return m.sel(constraint.AttrLeft) }
func (m *Maker) Right() *Maker    { return m.sel(constraint.AttrRight) }
func (m *Maker) Top() *Maker      { return m.sel(constraint.AttrTop) }
func (m *Maker) Bottom() *Maker   { return m.sel(constraint.AttrBottom) }
func (m *Maker) Leading() *Maker  { return m.sel(constraint.AttrLeading) }
func (m *Maker) Trailing() *Maker { return m.sel(constraint.AttrTrailing) }
func (m *Maker) Width() *Maker    { return m.sel(constraint.AttrWidth) }
func (m *Maker) Height() *Maker   { return m.sel(constraint.AttrHeight) }
func (m *Maker) CenterX() *Maker  { return m.sel(constraint.AttrCenterX) }
func (m *Maker) CenterY() *Maker  { return m.sel(constraint.AttrCenterY) }

// Edges selects top, left, bottom and right.
func (m *Maker) Edges() *Maker {
	return m.sel(constraint.AttrTop, constraint.AttrLeft, constraint.AttrBottom, constraint.AttrRight)
}

// Size selects width and height.
func (m *Maker) Size() *Maker { return m.sel(constraint.AttrWidth, constraint.AttrHeight) }

// Center selects centerX and centerY.
func (m *Maker) Center() *Maker { return m.sel(constraint.AttrCenterX, constraint.AttrCenterY) }

// Horizontal selects left and right.
func (m *Maker) Horizontal() *Maker { return m.sel(constraint.AttrLeft, constraint.AttrRight) }

// Vertical selects top and bottom.
func (m *Maker) Vertical() *Maker { return m.sel(constraint.AttrTop, constraint.AttrBottom) }

// Attribute selects a by value. It is the programmatic form of the named
// selectors, used by scene documents.
func (m *Maker) Attribute(a constraint.Attribute) *Maker {
	if m.err == nil && !a.Valid() {
		m.fail(errors.New(errors.ErrCodeInvalidAttribute, "cannot select attribute %v on %s", a, m.target.Name()))
		return m
	}
	return m.sel(a)
}

func (m *Maker) sel(attrs ...constraint.Attribute) *Maker {
	if m.err != nil {
		return m
	}
	for _, a := range attrs {
		m.pending = append(m.pending, constraint.RefOf(m.target, a))
	}
	return m
}

// =============================================================================
// Terminal operations
// =============================================================================

// EqualTo relates every selection to ref: "sel == ref".
func (m *Maker) EqualTo(ref constraint.Ref) *Maker { return m.toRef(constraint.Equal, ref) }

// AtLeast relates every selection to ref: "sel >= ref".
func (m *Maker) AtLeast(ref constraint.Ref) *Maker { return m.toRef(constraint.GreaterOrEqual, ref) }

// AtMost relates every selection to ref: "sel <= ref".
func (m *Maker) AtMost(ref constraint.Ref) *Maker { return m.toRef(constraint.LessOrEqual, ref) }

// EqualToConstant relates every selection to a literal. Width and height are
// related to the literal directly; every other attribute is related to the
// same attribute of the target's container, offset by value.
func (m *Maker) EqualToConstant(value float64) *Maker {
	return m.toConstant(constraint.Equal, value)
}

// AtLeastConstant is EqualToConstant with a ">=" relation.
func (m *Maker) AtLeastConstant(value float64) *Maker {
	return m.toConstant(constraint.GreaterOrEqual, value)
}

// AtMostConstant is EqualToConstant with a "<=" relation.
func (m *Maker) AtMostConstant(value float64) *Maker {
	return m.toConstant(constraint.LessOrEqual, value)
}

// EqualToRegion relates every selection to the same attribute of r.
func (m *Maker) EqualToRegion(r constraint.Region) *Maker { return m.toRegion(constraint.Equal, r) }

// AtLeastRegion is EqualToRegion with a ">=" relation.
func (m *Maker) AtLeastRegion(r constraint.Region) *Maker {
	return m.toRegion(constraint.GreaterOrEqual, r)
}

// AtMostRegion is EqualToRegion with a "<=" relation.
func (m *Maker) AtMostRegion(r constraint.Region) *Maker {
	return m.toRegion(constraint.LessOrEqual, r)
}

// EqualToContainer relates every selection to the same attribute of the
// target's container.
func (m *Maker) EqualToContainer() *Maker { return m.toContainer(constraint.Equal) }

// AtLeastContainer is EqualToContainer with a ">=" relation.
func (m *Maker) AtLeastContainer() *Maker { return m.toContainer(constraint.GreaterOrEqual) }

// AtMostContainer is EqualToContainer with a "<=" relation.
func (m *Maker) AtMostContainer() *Maker { return m.toContainer(constraint.LessOrEqual) }

func (m *Maker) toRef(rel constraint.Relation, ref constraint.Ref) *Maker {
	if m.err != nil {
		return m
	}
	if ref.Owner() == nil {
		return m.fail(errors.New(errors.ErrCodeInvalidInput, "%s: relation target has no owner", m.target.Name()))
	}
	return m.emit(func(sel constraint.Ref) *constraint.Constraint {
		return sel.Relate(rel, ref)
	})
}

func (m *Maker) toConstant(rel constraint.Relation, value float64) *Maker {
	if m.err != nil {
		return m
	}
	container := m.target.Container()
	for _, sel := range m.pending {
		if !sel.Attribute().IsDimension() && container == nil {
			return m.fail(errors.New(errors.ErrCodeMissingContainer,
				"%s.%s relative to a constant needs a container", m.target.Name(), sel.Attribute()))
		}
	}
	return m.emit(func(sel constraint.Ref) *constraint.Constraint {
		if sel.Attribute().IsDimension() {
			return sel.RelateConstant(rel, value)
		}
		return sel.Relate(rel, constraint.RefOf(container, sel.Attribute()).OffsetBy(value))
	})
}

func (m *Maker) toRegion(rel constraint.Relation, r constraint.Region) *Maker {
	if m.err != nil {
		return m
	}
	if r == nil {
		return m.fail(errors.New(errors.ErrCodeInvalidInput, "%s: relation target region is nil", m.target.Name()))
	}
	return m.emit(func(sel constraint.Ref) *constraint.Constraint {
		return sel.Relate(rel, constraint.RefOf(r, sel.Attribute()))
	})
}

func (m *Maker) toContainer(rel constraint.Relation) *Maker {
	if m.err != nil {
		return m
	}
	container := m.target.Container()
	if container == nil && len(m.pending) > 0 {
		return m.fail(errors.New(errors.ErrCodeMissingContainer, "%s has no container", m.target.Name()))
	}
	return m.emit(func(sel constraint.Ref) *constraint.Constraint {
		return sel.Relate(rel, constraint.RefOf(container, sel.Attribute()))
	})
}

// emit consumes the pending selections, building one constraint for each.
func (m *Maker) emit(build func(constraint.Ref) *constraint.Constraint) *Maker {
	m.last = m.last[:0]
	for _, sel := range m.pending {
		m.last = append(m.last, len(m.produced))
		m.produced = append(m.produced, build(sel))
	}
	m.pending = m.pending[:0]
	return m
}

// =============================================================================
// Post-adjustment of the latest terminal call
// =============================================================================

// Offset adds delta to the constant of every constraint produced by the
// preceding terminal call.
func (m *Maker) Offset(delta float64) *Maker {
	if m.err != nil {
		return m
	}
	for _, i := range m.last {
		m.produced[i].Constant += delta
	}
	return m
}

// Multiplier replaces every constraint produced by the preceding terminal
// call with a rebuilt one carrying factor as its multiplier. Literal
// constraints keep the factor but have no second attribute to scale.
func (m *Maker) Multiplier(factor float64) *Maker {
	if m.err != nil {
		return m
	}
	for _, i := range m.last {
		m.produced[i] = m.produced[i].WithMultiplier(factor)
	}
	return m
}

// Priority replaces every constraint produced by the preceding terminal call
// with a copy carrying p.
func (m *Maker) Priority(p constraint.Priority) *Maker {
	if m.err != nil {
		return m
	}
	if !p.Valid() {
		return m.fail(errors.New(errors.ErrCodeInvalidInput, "%s: priority %v outside (0, 1000]", m.target.Name(), p))
	}
	for _, i := range m.last {
		m.produced[i] = constraint.WithPriority(m.produced[i], p)
	}
	return m
}

// Labeled sets the identifier of every constraint produced by the preceding
// terminal call.
func (m *Maker) Labeled(id string) *Maker {
	if m.err != nil {
		return m
	}
	for _, i := range m.last {
		m.produced[i].Identifier = id
	}
	return m
}

func (m *Maker) fail(err error) *Maker {
	if m.err == nil {
		m.err = err
	}
	m.pending = nil
	m.last = nil
	return m
}

// finish drops selections that never reached a terminal call.
func (m *Maker) finish() {
	if len(m.pending) > 0 {
		m.logger.Debug("dropping unterminated selections", "target", m.target.Name(), "count", len(m.pending))
		m.pending = nil
	}
}
