package conversion

import "fmt"

// ── Result[T] ─────────────────────────────────────────────────────────────────
// A value OR an error. Go functions normally return (T, error); Result[T]
// packs the pair into one value so an outcome can be compared and printed.

type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T]      { return Result[T]{Value: v} }
func Err[T any](e error) Result[T] { return Result[T]{Err: e} }

func (r Result[T]) IsOk() bool { return r.Err == nil }

// Get unpacks the result into the usual Go pair.
func (r Result[T]) Get() (T, error) { return r.Value, r.Err }

func (r Result[T]) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Err(%v)", r.Err)
	}
	return fmt.Sprintf("Ok(%v)", r.Value)
}
