package generic

// Filter returns the elements of s for which f returns true. The order of the
// elements is preserved.
func Filter[T any](s []T, f func(T) bool) []T {
	var res []T

	for _, v := range s {
		if f(v) {
			res = append(res, v)
		}
	}

	return res
}
