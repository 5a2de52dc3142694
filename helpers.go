package rooms

type maxIntegerTypes interface {
	int | int64
}

func max[T maxIntegerTypes](a, b T) T {
	if a > b {
		return a
	}

	return b
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}
