package either

// Fold collapses e: onLeft runs for a Left, onRight for a Right. Exactly one
// of them is called.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	switch v := e.(type) {
	case left[L, R]:
		return onLeft(v.value)
	case right[L, R]:
		return onRight(v.value)
	}
	panic(ErrNilEither)
}

// Chain is monadic bind. A Right is passed to f and f's Either is returned
// as is; a Left is returned with the same payload and f is never called.
func Chain[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	return Fold(e, Left[L, R2], f)
}

// Map transforms a Right payload, Left passes through untouched.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	return Chain(e, func(x R) Either[L, R2] {
		return Of[L](f(x))
	})
}

// Ap applies the function wrapped in that to the value wrapped in e.
// A Left e wins and that is not inspected; otherwise a Left that is returned.
func Ap[L, R, R2 any](e Either[L, R], that Either[L, func(R) R2]) Either[L, R2] {
	return Chain(e, func(x R) Either[L, R2] {
		return Map(that, func(g func(R) R2) R2 {
			return g(x)
		})
	})
}

// Bimap maps whichever side is present, keeping the tag.
func Bimap[L, R, L2, R2 any](e Either[L, R], onLeft func(L) L2, onRight func(R) R2) Either[L2, R2] {
	return Fold(e,
		func(l L) Either[L2, R2] { return Left[L2, R2](onLeft(l)) },
		func(r R) Either[L2, R2] { return Right[L2](onRight(r)) },
	)
}

func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	return Bimap(e, f, func(r R) R { return r })
}

// OrElse gives a Left a second chance: f receives the Left payload and its
// Either is returned. A Right is returned unchanged.
func OrElse[L, R, L2 any](e Either[L, R], f func(L) Either[L2, R]) Either[L2, R] {
	return Fold(e, f, Right[L2, R])
}

// Swap turns a Left into a Right and vice versa.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	return Fold(e, Right[R, L], Left[R, L])
}

func LeftOr[L, R any](e Either[L, R], defaultL L) L {
	return Fold(e, func(l L) L { return l }, func(R) L { return defaultL })
}

func RightOr[L, R any](e Either[L, R], defaultR R) R {
	return Fold(e, func(L) R { return defaultR }, func(r R) R { return r })
}
