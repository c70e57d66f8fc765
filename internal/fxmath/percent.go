package fxmath

// BasisPoints is the basis-point scale: 100% == 10000.
const BasisPoints = 10000

// Percent returns l as a fraction of r in basis points (0..10000 when
// 0 <= l <= r). A zero r yields 0.
func Percent(l, r int) int {
	if r == 0 {
		return 0
	}
	return int(int64(l) * BasisPoints / int64(r))
}

// PercentWholeRounded returns l as a fraction of r in whole percent,
// rounded to nearest.
func PercentWholeRounded(l, r int) int {
	p := Percent(l, r)
	if p < 0 {
		return -((-p + 50) / 100)
	}
	return (p + 50) / 100
}

// PercentOf returns percent (whole percent) of n, rounded to nearest.
func PercentOf(n, percent int) int {
	return int(divRound(int64(n)*int64(percent)*100, BasisPoints))
}

// Lerp interpolates between x and y at a whole percent. Equal endpoints
// and the 0 and 100 extremes return an endpoint without arithmetic.
func Lerp(x, y, percent int) int {
	switch {
	case x == y, percent <= 0:
		return x
	case percent >= 100:
		return y
	}
	return x + PercentOf(y-x, percent)
}
