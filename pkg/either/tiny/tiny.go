package tiny

import (
	"github.com/ib-77/either/pkg/either"
)

type Chain[L, R any] struct {
	e either.Either[L, R]
}

func Start[L, R any](e either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{e: e}
}

func FromValue[L, R any](v R) Chain[L, R] {
	return Start(either.Right[L](v))
}

// Try starts a chain from a call that may fail or panic
func Try[R any](f func() (R, error)) Chain[error, R] {
	return Start(either.TryCatch(f))
}

func (c Chain[L, R]) Either() either.Either[L, R] {
	return c.e
}

// Then composes functions that already return either.Either[L, R]
func (c Chain[L, R]) Then(onRight func(r R) either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{e: either.Chain(c.e, onRight)}
}

// ThenTry composes functions that return (R, error), like repo calls.
// Panics inside try are captured as Left.
func ThenTry[R any](c Chain[error, R], try func(r R) (R, error)) Chain[error, R] {
	return c.Then(func(r R) either.Either[error, R] {
		return either.TryCatch(func() (R, error) { return try(r) })
	})
}

// Map transforms the Right value
func (c Chain[L, R]) Map(onRight func(r R) R) Chain[L, R] {
	return Chain[L, R]{e: either.Map(c.e, onRight)}
}

// MapLeft transforms the Left value
func (c Chain[L, R]) MapLeft(onLeft func(l L) L) Chain[L, R] {
	return Chain[L, R]{e: either.MapLeft(c.e, onLeft)}
}

func (c Chain[L, R]) RepeatUntil(onRight func(r R) either.Either[L, R],
	until func(r R) bool) Chain[L, R] {

	if c.e.IsLeft() {
		return c
	}

	for {
		c = c.Then(onRight)

		r, ok := c.e.RightValue()
		if !ok || !until(r) {
			return c
		}
	}
}

func (c Chain[L, R]) While(onRight func(r R) either.Either[L, R],
	while func(r R) bool) Chain[L, R] {

	for {
		r, ok := c.e.RightValue()
		if !ok || !while(r) {
			return c
		}
		c = c.Then(onRight)
	}
}

// Or returns the first Right among c and alternative, otherwise c
func (c Chain[L, R]) Or(alternative Chain[L, R]) Chain[L, R] {
	return c.or(alternative)
}

func (c Chain[L, R]) or(chains ...Chain[L, R]) Chain[L, R] {
	candidates := make([]Chain[L, R], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.e.IsRight() {
			return ch
		}
	}

	return c
}

// And returns the first Left among c and required, otherwise required
func (c Chain[L, R]) And(required Chain[L, R]) Chain[L, R] {
	return c.and(required)
}

func (c Chain[L, R]) and(chains ...Chain[L, R]) Chain[L, R] {
	candidates := make([]Chain[L, R], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.e.IsLeft() {
			return ch
		}
		last = ch
	}

	return last
}

// Ensure triggers side effects for Right/Left without changing the value
func (c Chain[L, R]) Ensure(onRight func(r R), onLeft func(l L)) Chain[L, R] {
	either.Fold(c.e,
		func(l L) struct{} {
			if onLeft != nil {
				onLeft(l)
			}
			return struct{}{}
		},
		func(r R) struct{} {
			if onRight != nil {
				onRight(r)
			}
			return struct{}{}
		},
	)
	return c
}

// Finally collapses the chain to a final value, delegating to either.Fold
func (c Chain[L, R]) Finally(onLeft func(l L) R, onRight func(r R) R) R {
	return either.Fold(c.e, onLeft, onRight)
}
