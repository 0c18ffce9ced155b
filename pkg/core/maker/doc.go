// Package maker provides the fluent constraint maker and the per-element
// constraint store used for idempotent re-declaration.
//
// # Overview
//
// A [DSL] binds a host [Engine]. Each [DSL.Make] call creates a [Maker] for
// one target element, runs a configuration closure against it, and submits
// the produced constraints to the engine as a single batch:
//
//	dsl := maker.New(engine, logger)
//	_, err := dsl.Make(button, func(m *maker.Maker) {
//	    m.Left().EqualToConstant(100)
//	    m.Size().EqualToConstant(100)
//	    m.CenterY().EqualToContainer().Offset(10)
//	})
//
// # Literal dispatch
//
// EqualToConstant treats size and position differently. Width and height
// are related to the literal directly. Every other attribute is related to
// the same attribute of the target's container, offset by the literal, so
// m.Left().EqualToConstant(20) means "20 from the container's left edge".
// Positional literals on an element without a container fail with
// MISSING_CONTAINER.
//
// # Errors
//
// The first failing call records a sticky error. Every later call on the
// maker does nothing, and the entry point returns the error without
// activating any constraint.
//
// # Remake
//
// [DSL.Remake] replaces everything the element previously declared: the
// element's [Store] ends up holding exactly the new set, and the old set is
// deactivated.
//
// # Threading
//
// Makers, stores and elements are not synchronized. Configure an element
// only from the goroutine that owns its tree; concurrent configuration of
// the same element is undefined.
package maker
