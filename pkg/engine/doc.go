// Package engine provides an in-memory host activation engine.
//
// [Memory] stands in for a platform layout engine: it checks each batch
// against the preconditions a real engine enforces at activation time and
// tracks which constraints are live. It does not solve the system.
//
// Activation is all-or-nothing. A batch containing one invalid constraint
// is refused with INVALID_CONSTRAINT and nothing from it is installed.
//
// # Validation
//
// [Validate] applies these rules to a single constraint:
//
//   - the first item is set and both attributes are valid
//   - a positional attribute is never related to a bare constant
//   - positions relate to positions on the same axis, and left/right never
//     mix with leading/trailing
//   - sizes relate only to sizes
//   - both items share a common ancestor
//   - multiplier and constant are finite, and positional relations use a
//     non-zero multiplier
//   - priority lies in (0, 1000]
package engine
