// Package dataset generates the synthetic population seeded into the test
// database: collision-free login handles, globally unique book titles, and
// the cosmetic emails and secrets that go with them.
//
// Key pieces:
//   - [Username] : lowercased "first.last" handles with numeric suffixes on
//     collision; termination is guaranteed by the strictly increasing counter
//   - [TitleAllocator] : bounded random probing against a run-global used
//     set, with a deterministic counter-based fallback that cannot collide
//   - [Builder] : the reset → fixed accounts → random population → commit
//     state machine that drives a [Store]
//
// All randomness flows through an injected *rand.Rand, so identical seeds
// produce identical datasets. Allocators are instantiated fresh per build;
// their used sets never outlive a run.
package dataset
