package common

// Coalesce returns the first value that is not the zero value of T, or the zero value if there is none.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// CoalesceMap returns the first non-empty map, or nil if every candidate is empty.
// Maps are returned as is, not copied.
func CoalesceMap[M ~map[K]V, K comparable, V any](values ...M) M {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
