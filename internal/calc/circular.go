package calc

import "math"

type CircularDims struct {
	Thickness     float64 // mm
	Diameter      float64 // mm, outer
	InnerDiameter float64 // mm, 0 means solid disk
}

// CircularMass computes an annular disk when an inner diameter is given and
// a solid disk otherwise. The solid case is the annulus formula at inner
// radius zero, so the two agree in the limit.
func CircularMass(d CircularDims, density float64) float64 {
	thicknessM := d.Thickness / 1000
	outerRadiusM := d.Diameter / 2 / 1000

	var volumeM3 float64
	if d.InnerDiameter > 0 {
		innerRadiusM := d.InnerDiameter / 2 / 1000
		volumeM3 = math.Pi * (math.Pow(outerRadiusM, 2) - math.Pow(innerRadiusM, 2)) * thicknessM
	} else {
		volumeM3 = math.Pi * math.Pow(outerRadiusM, 2) * thicknessM
	}
	return volumeM3 * density
}
