package calc

import "math"

type PipeDims struct {
	Length        float64 // mm
	OuterDiameter float64 // mm
	WallThickness float64 // mm
}

// PipeMass treats the pipe as a hollow cylinder. The inner diameter is
// derived from the wall thickness; validation guarantees it stays positive.
func PipeMass(d PipeDims, density float64) float64 {
	innerDiameter := d.OuterDiameter - 2*d.WallThickness
	outerRadiusM := d.OuterDiameter / 2 / 1000
	innerRadiusM := innerDiameter / 2 / 1000
	volumeM3 := math.Pi * (math.Pow(outerRadiusM, 2) - math.Pow(innerRadiusM, 2)) * (d.Length / 1000)
	return volumeM3 * density
}
