// Package calc is the geometry-to-weight engine: one calculator per steel
// shape, all pure functions from dimensions in millimeters (plate-imperial
// excepted) and a density in kg/m^3 to mass in kilograms.
package calc

import (
	"errors"
	"fmt"
)

// Shape is the closed vocabulary of supported sections. Anything outside it
// is a programming error, not a validation failure.
type Shape string

const (
	Plate         Shape = "plate"
	PlateImperial Shape = "plate-imperial"
	Pipe          Shape = "pipe"
	Girder        Shape = "girder"
	Circular      Shape = "circular"
)

var ErrUnknownShape = errors.New("unknown shape")

// Dimensions is the wire form of a dimension set: every field optional, the
// shape decides which ones matter. Lengths in millimeters, except that for
// plate-imperial length and width are inches (thickness stays mm).
type Dimensions struct {
	Length          float64 `json:"length,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Thickness       float64 `json:"thickness,omitempty"`
	OuterDiameter   float64 `json:"outerDiameter,omitempty"`
	WallThickness   float64 `json:"wallThickness,omitempty"`
	FlangeWidth     float64 `json:"flangeWidth,omitempty"`
	FlangeThickness float64 `json:"flangeThickness,omitempty"`
	WebHeight       float64 `json:"webHeight,omitempty"`
	WebThickness    float64 `json:"webThickness,omitempty"`
	Diameter        float64 `json:"diameter,omitempty"`
	InnerDiameter   float64 `json:"innerDiameter,omitempty"`
}

// Result of a single-piece mass calculation. Girder is set only for girders.
type Result struct {
	WeightKg float64          `json:"weight_kg"`
	Girder   *GirderBreakdown `json:"girder,omitempty"`
}

// Mass dispatches to the calculator for the given shape. Dimensions must
// already have passed Validate; Mass itself only rejects unknown shapes.
func Mass(shape Shape, d Dimensions, density float64) (Result, error) {
	switch shape {
	case Plate:
		return Result{WeightKg: PlateMass(PlateDims{Length: d.Length, Width: d.Width, Thickness: d.Thickness}, density)}, nil
	case PlateImperial:
		return Result{WeightKg: PlateImperialMass(PlateImperialDims{LengthIn: d.Length, WidthIn: d.Width, ThicknessMm: d.Thickness})}, nil
	case Pipe:
		return Result{WeightKg: PipeMass(PipeDims{Length: d.Length, OuterDiameter: d.OuterDiameter, WallThickness: d.WallThickness}, density)}, nil
	case Girder:
		b := GirderMass(GirderDims{
			Length:          d.Length,
			FlangeWidth:     d.FlangeWidth,
			FlangeThickness: d.FlangeThickness,
			WebHeight:       d.WebHeight,
			WebThickness:    d.WebThickness,
		}, density)
		return Result{WeightKg: b.FlangeWeight + b.WebWeight, Girder: &b}, nil
	case Circular:
		return Result{WeightKg: CircularMass(CircularDims{Thickness: d.Thickness, Diameter: d.Diameter, InnerDiameter: d.InnerDiameter}, density)}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
}
