// Package constraint provides the attribute-reference algebra used to declare
// layout relations between regions.
//
// # Overview
//
// A [Ref] names one geometric attribute (an edge, a center line or a size)
// of a [Region] together with a multiplier and a constant. Refs are values:
// arithmetic never mutates a ref, it returns a new one.
//
//	ref := constraint.Width(header).ScaledBy(0.5).OffsetBy(8)
//
// Relating a ref to another ref, or to a literal, yields a [Constraint]:
//
//	c := constraint.Left(card).EqualTo(constraint.Left(root).OffsetBy(20))
//	w := constraint.Width(card).AtMostConstant(320)
//
// The resulting constraint reads
//
//	card.left == 1.0 * root.left + 20
//
// The multiplier and constant of a constraint come from the right-hand ref;
// the left-hand ref contributes only its owner and attribute.
//
// # Priorities
//
// Priority is fixed once a constraint is handed to the host engine, so it is
// never mutated. [WithPriority] returns a replacement:
//
//	c = constraint.WithPriority(c, constraint.PriorityDefaultHigh)
//
// Apply priorities before activation. A replacement built from an already
// active constraint is not itself active.
//
// # Identity
//
// Constraints are handled by pointer. Two constraints built separately are
// distinct even when every field matches; stores and engines key on identity.
package constraint
