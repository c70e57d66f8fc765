package geom

// LineXAtY returns the x coordinate where the segment p0-p1 crosses the
// horizontal line at y, rounded to nearest. ok is false when the segment is
// horizontal or does not span y.
func LineXAtY(p0, p1 Point, y int) (x int, ok bool) {
	if p0.Y == p1.Y {
		return 0, false
	}
	lo, hi := minmax(p0.Y, p1.Y)
	if y < lo || y > hi {
		return 0, false
	}
	num := (y - p0.Y) * (p1.X - p0.X)
	den := p1.Y - p0.Y
	return p0.X + divRound(num, den), true
}

// LineYAtX returns the y coordinate where the segment p0-p1 crosses the
// vertical line at x, rounded to nearest. ok is false when the segment is
// vertical or does not span x.
func LineYAtX(p0, p1 Point, x int) (y int, ok bool) {
	if p0.X == p1.X {
		return 0, false
	}
	lo, hi := minmax(p0.X, p1.X)
	if x < lo || x > hi {
		return 0, false
	}
	num := (x - p0.X) * (p1.Y - p0.Y)
	den := p1.X - p0.X
	return p0.Y + divRound(num, den), true
}

// PointRelPositionFromLine reports on which side of the directed line a->b
// the point p lies: +1 to the left (counter-clockwise in a y-up frame), -1 to
// the right, 0 on the line. It is the sign of the cross product (b-a)x(p-a).
func PointRelPositionFromLine(p, a, b Point) int {
	c := Cross(b.Sub(a), p.Sub(a))
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// Cross returns the z component of the cross product u x v.
func Cross(u, v Point) int64 {
	return int64(u.X)*int64(v.Y) - int64(u.Y)*int64(v.X)
}

// divRound divides rounding half away from zero.
func divRound(n, d int) int {
	if d < 0 {
		n, d = -n, -d
	}
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
