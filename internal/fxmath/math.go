package fxmath

// Integer is the set of types accepted by the generic helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Clamp restricts v to [lo, hi].
func Clamp[T Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns |v|.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
