package calc

import "github.com/Nur-allhi/metalmetrica/internal/units"

type PlateDims struct {
	Length    float64 // mm
	Width     float64 // mm
	Thickness float64 // mm
}

// PlateMass is the metric plate formula: rectangular volume in m^3 times
// density.
func PlateMass(d PlateDims, density float64) float64 {
	volumeM3 := (d.Length / 1000) * (d.Width / 1000) * (d.Thickness / 1000)
	return volumeM3 * density
}

type PlateImperialDims struct {
	LengthIn    float64 // inches
	WidthIn     float64 // inches
	ThicknessMm float64 // mm
}

// PlateImperialMass is the legacy "non-quality" plate formula: length and
// width in inches, thickness in millimeters, and a hardcoded 0.284 lb/in^3
// steel density. It deliberately ignores the density table; downstream
// reports depend on this exact numeric behavior, so it is kept as-is rather
// than unified with the metric path.
func PlateImperialMass(d PlateImperialDims) float64 {
	thicknessIn := d.ThicknessMm / units.InToMm
	weightLb := d.LengthIn * d.WidthIn * thicknessIn * 0.284
	return weightLb / units.KgToLb
}
