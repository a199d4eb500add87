package calc

import "github.com/Nur-allhi/metalmetrica/internal/units"

type GirderDims struct {
	Length          float64 // mm
	FlangeWidth     float64 // mm
	FlangeThickness float64 // mm
	WebHeight       float64 // mm
	WebThickness    float64 // mm
}

// GirderBreakdown carries the per-piece flange/web split used by fabrication
// estimators alongside the running-foot metrics.
type GirderBreakdown struct {
	FlangeWeight      float64 `json:"flangeWeight"`
	WebWeight         float64 `json:"webWeight"`
	FlangeRunningFeet float64 `json:"flangeRunningFeet"`
	WebRunningFeet    float64 `json:"webRunningFeet"`
}

// GirderMass approximates an I-beam as two flanges plus a web, each a
// rectangular prism. Total mass is FlangeWeight + WebWeight with no cross
// term. The running-feet formulas treat the width/height in millimeters as a
// count multiplier; that is the estimating convention, not a unit conversion.
func GirderMass(d GirderDims, density float64) GirderBreakdown {
	const mmToM = 1.0 / 1000

	flangeVolumeM3 := (d.FlangeWidth * mmToM) * (d.FlangeThickness * mmToM) * (d.Length * mmToM) * 2
	webVolumeM3 := (d.WebHeight * mmToM) * (d.WebThickness * mmToM) * (d.Length * mmToM)

	return GirderBreakdown{
		FlangeWeight:      flangeVolumeM3 * density,
		WebWeight:         webVolumeM3 * density,
		FlangeRunningFeet: (d.Length * units.MmToFt * d.FlangeWidth * 2) / 12,
		WebRunningFeet:    (d.Length * units.MmToFt * d.WebHeight) / 12,
	}
}
