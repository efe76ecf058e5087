package app

// Result is an outcome of single load routine.
// Zero value means the routine hasn't run yet.
type Result[T any] struct {
	Value  T
	Err    error
	Loaded bool
}

// Ok creates successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Loaded: true}
}

// Failed creates failed Result.
func Failed[T any](err error) Result[T] {
	return Result[T]{Err: err, Loaded: true}
}

// OK tells if routine finished without error.
func (r Result[T]) OK() bool {
	return r.Loaded && r.Err == nil
}
