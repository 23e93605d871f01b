// Package dedupe removes repeated values from slices.
package dedupe

// Values removes duplicates from a slice, keeping the first occurrence of
// each value. Order is preserved and the input is not modified.
//
// Example:
//
//	Values([]int{8, 1, 8, 32, 1})
//	// Returns: []int{8, 1, 32}
func Values[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}

	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}
