package either

import (
	"errors"
	"fmt"
)

// ErrNilEither is the panic value raised when an operation gets a nil Either.
var ErrNilEither = errors.New("either: nil Either, expected Left or Right")

// Either holds exactly one of a Left or a Right value. The only
// implementations are the ones returned by Left, Right, Of and TryCatch.
type Either[L, R any] interface {
	// IsLeft reports whether the value is a Left
	IsLeft() bool
	// IsRight reports whether the value is a Right
	IsRight() bool
	// LeftValue returns the Left payload and true, or the zero L and false
	LeftValue() (L, bool)
	// RightValue returns the Right payload and true, or the zero R and false
	RightValue() (R, bool)
	String() string

	sealed()
}

type left[L, R any] struct {
	value L
}

type right[L, R any] struct {
	value R
}

func Left[L, R any](x L) Either[L, R] {
	return left[L, R]{value: x}
}

func Right[L, R any](x R) Either[L, R] {
	return right[L, R]{value: x}
}

// Of is the applicative constructor, always a Right.
func Of[L, R any](x R) Either[L, R] {
	return Right[L, R](x)
}

func (left[L, R]) IsLeft() bool  { return true }
func (left[L, R]) IsRight() bool { return false }

func (l left[L, R]) LeftValue() (L, bool) {
	return l.value, true
}

func (left[L, R]) RightValue() (R, bool) {
	var zero R
	return zero, false
}

func (l left[L, R]) String() string {
	return fmt.Sprintf("Left(%v)", l.value)
}

func (left[L, R]) sealed() {}

func (right[L, R]) IsLeft() bool  { return false }
func (right[L, R]) IsRight() bool { return true }

func (right[L, R]) LeftValue() (L, bool) {
	var zero L
	return zero, false
}

func (r right[L, R]) RightValue() (R, bool) {
	return r.value, true
}

func (r right[L, R]) String() string {
	return fmt.Sprintf("Right(%v)", r.value)
}

func (right[L, R]) sealed() {}
