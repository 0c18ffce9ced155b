// Package view provides concrete host elements for the constraint maker: a
// [View] tree and named layout [Guide] regions.
//
// Views answer the one structural question the maker needs, which is "what
// is my container", and own the per-element constraint store. They carry no
// geometry; positions come from the host engine solving the constraints.
//
//	root := view.New("root")
//	card := view.New("card")
//	_ = root.AddSubview(card)
//	safe := root.AddGuide("safe")
//
// A view's store is created on first use and released by [View.Destroy].
// Deactivate the stored constraints (maker.DSL.Teardown) before destroying a
// view that has active constraints.
package view
