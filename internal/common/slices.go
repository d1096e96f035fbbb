package common

import "cmp"

// Min returns the smallest element of the slice and true, or the zero value and false if empty.
func Min[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	best := s[0]
	for _, v := range s[1:] {
		best = min(best, v)
	}

	return best, true
}
