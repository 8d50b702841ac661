package utils

import "cmp"

// InRange reports whether x lies in the closed interval [lo, hi].
func InRange[T cmp.Ordered](x, lo, hi T) bool {
	return lo <= x && x <= hi
}

// FloorAt returns x, raised to floor if it falls below it.
func FloorAt[T cmp.Ordered](x, floor T) T {
	return max(x, floor)
}
