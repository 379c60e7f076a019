package svgpath

import "math"

// ArcToCubics converts an elliptical arc from x0,y0 to x1,y1 into cubic
// Bezier segments via the standard endpoint-to-center parameterization.
// Radii are taken by absolute value and scaled up when they are too small
// to span the endpoints; the angular span is split into the minimum
// number of segments no larger than a quarter turn.
//
// Coincident endpoints yield no segments. A zero radius yields a single
// degenerate cubic, a straight line whose control points sit on the two
// endpoints.
func ArcToCubics(x0, y0, rx, ry, xRotation float64, largeArc, sweep bool, x1, y1 float64) []CubeTo {
	if x0 == x1 && y0 == y1 {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []CubeTo{{X1: x0, Y1: y0, X2: x1, Y2: y1, X: x1, Y: y1}}
	}

	phi := xRotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx := (x0 - x1) / 2
	dy := (y0 - y1) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale out-of-range radii up so the ellipse can reach both endpoints.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxSq := rx * rx
	rySq := ry * ry
	x1pSq := x1p * x1p
	y1pSq := y1p * y1p

	// Negative radicands are rounding error on an exactly-fitting ellipse.
	radicand := (rxSq*rySq - rxSq*y1pSq - rySq*x1pSq) / (rxSq*y1pSq + rySq*x1pSq)
	if radicand < 0 {
		radicand = 0
	}
	coef := math.Sqrt(radicand)
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x1)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y1)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry

	theta1 := angleBetween(1, 0, ux, uy)
	delta := angleBetween(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(segments)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([]CubeTo, 0, segments)
	for i := 0; i < segments; i++ {
		thetaA := theta1 + float64(i)*step
		thetaB := thetaA + step

		ax, ay := ellipsePoint(cx, cy, rx, ry, sinPhi, cosPhi, thetaA)
		adx, ady := ellipseDerivative(rx, ry, sinPhi, cosPhi, thetaA)
		bx, by := ellipsePoint(cx, cy, rx, ry, sinPhi, cosPhi, thetaB)
		bdx, bdy := ellipseDerivative(rx, ry, sinPhi, cosPhi, thetaB)

		curves = append(curves, CubeTo{
			X1: ax + alpha*adx,
			Y1: ay + alpha*ady,
			X2: bx - alpha*bdx,
			Y2: by - alpha*bdy,
			X:  bx,
			Y:  by,
		})
	}
	return curves
}

// angleBetween returns the signed angle from vector u to vector v, the
// sign taken from the cross product.
func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	length := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	ratio := dot / length
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	angle := math.Acos(ratio)
	if ux*vy-uy*vx < 0 {
		return -angle
	}
	return angle
}

// ellipsePoint evaluates a rotated ellipse at parameter angle theta.
func ellipsePoint(cx, cy, rx, ry, sinPhi, cosPhi, theta float64) (float64, float64) {
	sinT, cosT := math.Sincos(theta)
	return cx + rx*cosPhi*cosT - ry*sinPhi*sinT,
		cy + rx*sinPhi*cosT + ry*cosPhi*sinT
}

// ellipseDerivative evaluates the tangent of a rotated ellipse at theta.
func ellipseDerivative(rx, ry, sinPhi, cosPhi, theta float64) (float64, float64) {
	sinT, cosT := math.Sincos(theta)
	return -rx*cosPhi*sinT - ry*sinPhi*cosT,
		-rx*sinPhi*sinT + ry*cosPhi*cosT
}
