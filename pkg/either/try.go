package either

import "fmt"

// PanicError carries a non-error value recovered from a panic in TryCatch.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("either: recovered panic: %#v", e.Value)
}

// FromPair lifts a (value, error) pair. A nil error, typed nil included,
// gives Right(v); anything else gives Left(err).
func FromPair[R any](v R, err error) Either[error, R] {
	if isNil(err) {
		return Right[error](v)
	}
	return Left[error, R](err)
}

// ToPair is the inverse of FromPair. A Left yields the zero R and its error.
func ToPair[R any](e Either[error, R]) (R, error) {
	var v R
	err := Fold(e,
		func(err error) error { return err },
		func(r R) error {
			v = r
			return nil
		},
	)
	return v, err
}

// TryCatch calls f once and captures its outcome. A returned error becomes
// the Left payload unchanged. A panic is recovered: an error value is kept
// as is, anything else is wrapped in *PanicError.
func TryCatch[R any](f func() (R, error)) (out Either[error, R]) {
	defer func() {
		if a := recover(); a != nil {
			if err, ok := a.(error); ok {
				out = Left[error, R](err)
			} else {
				out = Left[error, R](&PanicError{Value: a})
			}
		}
	}()

	v, err := f()
	return FromPair(v, err)
}
