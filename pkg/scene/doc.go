// Package scene loads TOML layout documents and applies them through the
// constraint maker.
//
// A document declares a view tree, optional layout guides, and per-element
// rules. Rules map one-to-one onto maker calls:
//
//	name = "login"
//
//	[[views]]
//	name = "card"
//
//	[[views.rules]]
//	select = ["left", "right"]
//	constant = 20              # card.left == root.left + 20, ...
//
//	[[views.rules]]
//	select = ["top"]
//	to = "safe.top"            # "<region>.<attr>", "<region>" or "container"
//	plus = 16
//
//	[[guides]]
//	name = "safe"
//	owner = "root"
//
//	[[remakes]]
//	view = "card"
//	rules = [{ select = ["edges"], to = "container" }]
//
// The root view is implicit and named "root". Views default to root as
// parent; a parent must be declared before its children.
//
// [Build] creates the tree, runs Make for every view and guide in document
// order, then runs Remake for each [[remakes]] entry.
package scene
