package lox

// Map transforms every element of the slice. The result is never nil, so it
// marshals to an empty JSON array instead of null.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// ReverseMap turns a map into a slice. Iteration order is not defined,
// callers sort the result themselves when they need a stable order.
func ReverseMap[T, T1 any, R comparable](collection map[R]T, iteratee func(key R, value T) T1) []T1 {
	result := make([]T1, 0, len(collection))

	for k, v := range collection {
		result = append(result, iteratee(k, v))
	}

	return result
}

// FilterAssociate builds a map keyed by callback results, skipping elements
// for which the callback returns false. Later elements win on key collision.
func FilterAssociate[T any, R comparable](collection []T, callback func(item T) (R, bool)) map[R]T {
	result := make(map[R]T, len(collection))

	for _, item := range collection {
		if r, ok := callback(item); ok {
			result[r] = item
		}
	}

	return result
}
