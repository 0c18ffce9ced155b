// Package pkg holds the caliper libraries.
//
// # Overview
//
// Caliper is a declarative builder for layout constraints. Client code
// selects attributes of a view, relates them to another view, its container
// or a constant, and submits the result to a layout engine as one batch:
//
//	cs, err := dsl.Make(card, func(m *maker.Maker) {
//	    m.Edges().EqualToContainer().Offset(20)
//	    m.Height().AtLeastConstant(120).Priority(constraint.PriorityDefaultHigh)
//	})
//
// The packages are organized as:
//
//  1. [core/constraint] - attributes, refs, relations, priorities, constraints
//  2. [core/maker] - the maker DSL, per-element stores, Make and Remake
//  3. [core/view] - a view tree and layout guides implementing maker.Element
//  4. [engine] - an in-memory engine that validates and tracks activation
//  5. [scene] - TOML scene documents built through the maker
//  6. [export] - JSON, Graphviz DOT and SVG output
//
// Supporting packages: [errors] (coded errors), [observability] (hooks),
// [cache] (rendered artifact cache) and [buildinfo] (version info).
//
// # Data flow
//
//	scene.toml
//	    ↓
//	[scene] (parse, validate, build view tree)
//	    ↓
//	[core/maker] (Make / Remake per element)
//	    ↓
//	[engine] (validate + activate batches)
//	    ↓
//	[export] (JSON / DOT / SVG via [cache])
package pkg
