package svgicon

import "math"

// flatness is the largest distance, in user units, a control point may sit
// from the chord before a curve is subdivided again.
const flatness = 0.05

type cubicBezier struct {
	controlpoints [4][2]float64
}

// quadToCubic elevates the quadratic p0, q, p2 to the equivalent cubic.
func quadToCubic(p0, q, p2 [2]float64) cubicBezier {
	var cb cubicBezier
	cb.controlpoints[0] = p0
	cb.controlpoints[1] = [2]float64{p0[0] + 2.0/3.0*(q[0]-p0[0]), p0[1] + 2.0/3.0*(q[1]-p0[1])}
	cb.controlpoints[2] = [2]float64{p2[0] + 2.0/3.0*(q[0]-p2[0]), p2[1] + 2.0/3.0*(q[1]-p2[1])}
	cb.controlpoints[3] = p2
	return cb
}

// recursiveInterpolate flattens the curve by de Casteljau subdivision and
// returns its vertices, excluding the start point.
func (cb cubicBezier) recursiveInterpolate(limit, level int) [][2]float64 {
	if level >= limit || cb.flat() {
		return [][2]float64{cb.controlpoints[3]}
	}
	left, right := cb.split()
	return append(left.recursiveInterpolate(limit, level+1), right.recursiveInterpolate(limit, level+1)...)
}

func (cb cubicBezier) flat() bool {
	p0, p3 := cb.controlpoints[0], cb.controlpoints[3]
	return distToLine(cb.controlpoints[1], p0, p3) <= flatness &&
		distToLine(cb.controlpoints[2], p0, p3) <= flatness
}

func (cb cubicBezier) split() (cubicBezier, cubicBezier) {
	p := cb.controlpoints
	p01 := mid(p[0], p[1])
	p12 := mid(p[1], p[2])
	p23 := mid(p[2], p[3])
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)

	return cubicBezier{[4][2]float64{p[0], p01, p012, m}},
		cubicBezier{[4][2]float64{m, p123, p23, p[3]}}
}

func mid(a, b [2]float64) [2]float64 {
	return [2]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

func distToLine(p, a, b [2]float64) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	return math.Abs(dy*p[0]-dx*p[1]+b[0]*a[1]-b[1]*a[0]) / l
}
