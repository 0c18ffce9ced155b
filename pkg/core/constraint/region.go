package constraint

// Region is anything attribute-addressable in a relation: a concrete element
// or a named layout guide with no rendering of its own.
//
// Container returns the structural parent the region is positioned relative
// to, or nil when it has none. Implementations must return an untyped nil,
// not a typed nil pointer, for detached regions.
type Region interface {
	Container() Region
	Name() string
}

// Anchored is implemented by regions that expose their attributes directly.
type Anchored interface {
	Left() Ref
	Right() Ref
	Top() Ref
	Bottom() Ref
	Leading() Ref
	Trailing() Ref
	Width() Ref
	Height() Ref
	CenterX() Ref
	CenterY() Ref
}

// Anchors implements [Anchored] for an owner region. Embed it and set it
// from the constructor:
//
//	v := &View{}
//	v.Anchors = constraint.AnchorsOf(v)
type Anchors struct {
	owner Region
}

// AnchorsOf returns the accessor set for r.
func AnchorsOf(r Region) Anchors {
	return Anchors{owner: r}
}

func (a Anchors) Left() Ref     { return Left(a.owner) }
func (a Anchors) Right() Ref    { return Right(a.owner) }
func (a Anchors) Top() Ref      { return Top(a.owner) }
func (a Anchors) Bottom() Ref   { return Bottom(a.owner) }
func (a Anchors) Leading() Ref  { return Leading(a.owner) }
func (a Anchors) Trailing() Ref { return Trailing(a.owner) }
func (a Anchors) Width() Ref    { return Width(a.owner) }
func (a Anchors) Height() Ref   { return Height(a.owner) }
func (a Anchors) CenterX() Ref  { return CenterX(a.owner) }
func (a Anchors) CenterY() Ref  { return CenterY(a.owner) }

// RefOf returns the identity ref (multiplier 1, constant 0) for attribute a
// of region r.
func RefOf(r Region, a Attribute) Ref {
	return Ref{owner: r, attr: a, multiplier: 1, constant: 0}
}

func Left(r Region) Ref     { return RefOf(r, AttrLeft) }
func Right(r Region) Ref    { return RefOf(r, AttrRight) }
func Top(r Region) Ref      { return RefOf(r, AttrTop) }
func Bottom(r Region) Ref   { return RefOf(r, AttrBottom) }
func Leading(r Region) Ref  { return RefOf(r, AttrLeading) }
func Trailing(r Region) Ref { return RefOf(r, AttrTrailing) }
func Width(r Region) Ref    { return RefOf(r, AttrWidth) }
func Height(r Region) Ref   { return RefOf(r, AttrHeight) }
func CenterX(r Region) Ref  { return RefOf(r, AttrCenterX) }
func CenterY(r Region) Ref  { return RefOf(r, AttrCenterY) }

// Ancestors returns the container chain of r, nearest first, excluding r.
func Ancestors(r Region) []Region {
	var out []Region
	for c := r.Container(); c != nil; c = c.Container() {
		out = append(out, c)
	}
	return out
}

// CommonAncestor returns the nearest region that is a or b or contains both,
// or nil when they live in separate trees.
func CommonAncestor(a, b Region) Region {
	if a == nil || b == nil {
		return nil
	}
	seen := map[Region]bool{a: true}
	for _, r := range Ancestors(a) {
		seen[r] = true
	}
	if seen[b] {
		return b
	}
	for _, r := range Ancestors(b) {
		if seen[r] {
			return r
		}
	}
	return nil
}
