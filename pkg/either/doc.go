// Package either provides Either[L, R], a value that is exactly one of a Left
// (alternative, usually failure) or a Right (primary, usually success).
//
// Highlights:
// - Left/Right/Of: construct an Either
// - TryCatch/FromPair: turn a (value, error) call into Either[error, R]
// - Map/Chain: transform or sequence the Right value, Left short-circuits
// - Ap: apply a wrapped function to a wrapped value
// - Bimap/MapLeft/Swap: reshape either side keeping the tag
// - Fold: collapse to a single value via left/right handlers
//
// Either values are immutable and may be shared freely between goroutines.
package either
