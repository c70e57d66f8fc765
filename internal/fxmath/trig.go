package fxmath

// TrigScale is the fixed-point scale of SineCosine results: cos(0) == TrigScale.
const TrigScale = 256

// Trig selects the function evaluated by SineCosine.
type Trig uint8

const (
	// Cosine selects cos(angle).
	Cosine Trig = iota
	// Sine selects sin(angle).
	Sine
)

// cosTable holds round(256*cos(i°)) for i in [0, 90].
var cosTable = [91]int32{
	256, 256, 256, 256, 255, 255, 255, 254, 254, 253,
	252, 251, 250, 249, 248, 247, 246, 245, 243, 242,
	241, 239, 237, 236, 234, 232, 230, 228, 226, 224,
	222, 219, 217, 215, 212, 210, 207, 204, 202, 199,
	196, 193, 190, 187, 184, 181, 178, 175, 171, 168,
	165, 161, 158, 154, 150, 147, 143, 139, 136, 132,
	128, 124, 120, 116, 112, 108, 104, 100, 96, 92,
	88, 83, 79, 75, 71, 66, 62, 58, 53, 49,
	44, 40, 36, 31, 27, 22, 18, 13, 9, 4,
	0,
}

// NormalizeAngle folds any integer angle in degrees into [0, 360).
func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// SineCosine returns sin or cos of an integer angle in degrees, scaled by
// TrigScale. Sine is evaluated as cos(angle-90).
func SineCosine(angle int, fn Trig) int32 {
	if fn == Sine {
		angle -= 90
	}
	a := NormalizeAngle(angle)

	switch {
	case a <= 90:
		return cosTable[a]
	case a <= 180:
		return -cosTable[180-a]
	case a <= 270:
		return -cosTable[a-180]
	default:
		return cosTable[360-a]
	}
}

// Cos is shorthand for SineCosine(angle, Cosine).
func Cos(angle int) int32 { return SineCosine(angle, Cosine) }

// Sin is shorthand for SineCosine(angle, Sine).
func Sin(angle int) int32 { return SineCosine(angle, Sine) }

// divRound divides n by d (d > 0) rounding half away from zero.
func divRound(n, d int64) int64 {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}

// PolarToXY converts a radius and an angle in degrees to Cartesian offsets.
// The y axis points up (mathematical orientation); callers rasterizing into
// a buffer flip it.
func PolarToXY(r, angle int) (x, y int) {
	x = int(divRound(int64(r)*int64(Cos(angle)), TrigScale))
	y = int(divRound(int64(r)*int64(Sin(angle)), TrigScale))
	return x, y
}

// EllipsePoint samples an ellipse with semi-axes a and b, rotated by tilt
// degrees, at parameter t degrees. The result is an offset from the ellipse
// center with the y axis pointing up.
func EllipsePoint(t, a, b, tilt int) (x, y int) {
	ct, st := int64(Cos(t)), int64(Sin(t))
	cTilt, sTilt := int64(Cos(tilt)), int64(Sin(tilt))
	aa, bb := int64(a), int64(b)

	const scale = TrigScale * TrigScale
	x = int(divRound(aa*ct*cTilt-bb*st*sTilt, scale))
	y = int(divRound(aa*ct*sTilt+bb*st*cTilt, scale))
	return x, y
}
