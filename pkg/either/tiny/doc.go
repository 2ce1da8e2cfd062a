// Package tiny provides a minimal fluent Chain[L, R] for synchronous
// composition of Either[L, R] values.
//
// It keeps the API surface very small:
// - Start/FromValue/Try: create a Chain
// - Then/ThenTry: compose Either-returning or error-returning functions
// - Map/MapLeft: transform one side
// - Or/And: pick between chains
// - Ensure: trigger side effects without changing the value
// - Finally: reduce to a concrete value via handlers
//
// Tiny is for same-type pipelines; use the either package functions when
// the Right type changes between steps.
package tiny
