package helper

import (
	"errors"
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 is GetTypedValueOf for comma-ok getters such as sync.Map.Load.
// ok is false when the getter misses or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use it where a failure can only mean a broken invariant.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

var (
	ErrMaxAttempts = errors.New("max attempts reached")

	// ErrRetry marks an error as transient. Retry gives up at once on any
	// error that does not wrap it.
	ErrRetry = errors.New("retry")
)

// Retry calls fn until it succeeds, fails with an error not wrapping
// ErrRetry, or has been called maxAttempts times.
func Retry(maxAttempts int, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !errors.Is(err, ErrRetry) {
			return err
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, attempt, err)
		}
	}
}
