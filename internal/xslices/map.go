package xslices

func MapSlice[T any, U any](items []T, mapper func(T) U) []U {
	results := make([]U, 0, len(items))
	for _, item := range items {
		results = append(results, mapper(item))
	}
	return results
}

// MapSliceErr is MapSlice for mappers that can fail; the first failure
// aborts the mapping.
func MapSliceErr[T any, U any](items []T, mapper func(T) (U, error)) ([]U, error) {
	results := make([]U, 0, len(items))
	for _, item := range items {
		result, err := mapper(item)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
