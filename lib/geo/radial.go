package geo

import (
	"math"
)

// TopOffsetDeg is the conventional starting angle for cycle diagrams: the
// first element sits at the top, like 12 on a clock face or pitch class 0.
const TopOffsetDeg = 90.0

// RadialAngle returns the angle in degrees of element i out of n, starting at
// offsetDeg and proceeding clockwise. Angles are normalized to [0, 360).
func RadialAngle(i, n int, offsetDeg float64) float64 {
	deg := offsetDeg - float64(i)/float64(n)*360
	return math.Mod(deg+360, 360)
}

// PointOnCircle returns the point at the given angle (degrees) and radius
// from center.
func PointOnCircle(center *Point, radius, angleDeg float64) *Point {
	rad := Radians(angleDeg)
	return NewPoint(
		center.X+radius*math.Cos(rad),
		center.Y+radius*math.Sin(rad),
	)
}

// CirclePoints returns n points evenly spaced on the circle of the given
// center and radius, starting at offsetDeg and proceeding clockwise.
// Deterministic for given inputs: no rounding beyond float64 math.
func CirclePoints(center *Point, radius float64, n int, offsetDeg float64) Points {
	pts := make(Points, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, PointOnCircle(center, radius, RadialAngle(i, n, offsetDeg)))
	}
	return pts
}

// RingPoints returns the point sets for two concentric circles sharing the
// same center and angular offset, so that element 0 of each ring lies on the
// same radial line.
func RingPoints(center *Point, innerRadius, outerRadius float64, innerN, outerN int, offsetDeg float64) (inner, outer Points) {
	inner = CirclePoints(center, innerRadius, innerN, offsetDeg)
	outer = CirclePoints(center, outerRadius, outerN, offsetDeg)
	return inner, outer
}

// MinCycleRadius returns the smallest radius at which n elements of the given
// size, spaced evenly, keep at least padding between neighbouring borders.
// The chord between neighbouring centers is 2r*sin(pi/n).
func MinCycleRadius(n int, elementSize, padding float64) float64 {
	if n <= 1 {
		return 0
	}
	return (elementSize + padding) / (2 * math.Sin(math.Pi/float64(n)))
}
