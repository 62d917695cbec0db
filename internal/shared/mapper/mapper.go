package mapper

// MapSlice applies a mapper function to each element of a slice.
// Returns an empty slice if the input slice is nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}
