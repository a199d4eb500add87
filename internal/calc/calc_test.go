package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/units"
)

func TestPlateMass(t *testing.T) {
	// 1200 x 800 x 20 mm of mild steel: 0.0192 m^3 -> 150.72 kg
	m := calc.PlateMass(calc.PlateDims{Length: 1200, Width: 800, Thickness: 20}, units.DensityMildSteel)
	assert.InDelta(t, 150.72, m, 1e-9)
}

func TestPlateImperialMass(t *testing.T) {
	// 48 x 96 in, 12.7 mm (= 0.5 in): 48*96*0.5*0.284 lb, converted to kg.
	m := calc.PlateImperialMass(calc.PlateImperialDims{LengthIn: 48, WidthIn: 96, ThicknessMm: 12.7})
	assert.InDelta(t, 48*96*0.5*0.284/units.KgToLb, m, 1e-9)
}

func TestPlateImperialIgnoresDensity(t *testing.T) {
	// The legacy formula carries its own hardcoded density; the dispatcher
	// must produce the same mass whatever density the caller supplies.
	d := calc.Dimensions{Length: 48, Width: 96, Thickness: 12.7}
	r1, err := calc.Mass(calc.PlateImperial, d, units.DensityMildSteel)
	require.NoError(t, err)
	r2, err := calc.Mass(calc.PlateImperial, d, units.DensityStainless)
	require.NoError(t, err)
	assert.Equal(t, r1.WeightKg, r2.WeightKg)
}

func TestPipeMass(t *testing.T) {
	m := calc.PipeMass(calc.PipeDims{Length: 3000, OuterDiameter: 150, WallThickness: 10}, units.DensityMildSteel)

	// Must match the annulus formula evaluated in meters.
	want := math.Pi * (0.075*0.075 - 0.065*0.065) * 3.0 * units.DensityMildSteel
	assert.InDelta(t, want, m, 1e-9)
}

func TestCircularSolidEqualsAnnulusLimit(t *testing.T) {
	solid := calc.CircularMass(calc.CircularDims{Thickness: 25, Diameter: 300}, units.DensityMildSteel)

	want := math.Pi * math.Pow(0.15, 2) * 0.025 * units.DensityMildSteel
	assert.InDelta(t, want, solid, 1e-9)

	annular := calc.CircularMass(calc.CircularDims{Thickness: 25, Diameter: 300, InnerDiameter: 100}, units.DensityMildSteel)
	assert.Less(t, annular, solid)
}

func TestGirderMass(t *testing.T) {
	d := calc.GirderDims{Length: 6000, FlangeWidth: 200, FlangeThickness: 12, WebHeight: 400, WebThickness: 8}
	b := calc.GirderMass(d, units.DensityMildSteel)

	assert.InDelta(t, 226.08, b.FlangeWeight, 1e-9) // 0.2*0.012*6*2 m^3
	assert.InDelta(t, 150.72, b.WebWeight, 1e-9)    // 0.4*0.008*6 m^3
	assert.InDelta(t, (6000*units.MmToFt*200*2)/12, b.FlangeRunningFeet, 1e-9)
	assert.InDelta(t, (6000*units.MmToFt*400)/12, b.WebRunningFeet, 1e-9)

	res, err := calc.Mass(calc.Girder, calc.Dimensions{
		Length: 6000, FlangeWidth: 200, FlangeThickness: 12, WebHeight: 400, WebThickness: 8,
	}, units.DensityMildSteel)
	require.NoError(t, err)
	require.NotNil(t, res.Girder)
	assert.Equal(t, res.Girder.FlangeWeight+res.Girder.WebWeight, res.WeightKg)
}

func TestMassScalesLinearlyWithDensity(t *testing.T) {
	dims := map[calc.Shape]calc.Dimensions{
		calc.Plate:    {Length: 1000, Width: 500, Thickness: 10},
		calc.Pipe:     {Length: 2000, OuterDiameter: 100, WallThickness: 5},
		calc.Girder:   {Length: 3000, FlangeWidth: 150, FlangeThickness: 10, WebHeight: 300, WebThickness: 6},
		calc.Circular: {Thickness: 20, Diameter: 250, InnerDiameter: 80},
	}
	for shape, d := range dims {
		r1, err := calc.Mass(shape, d, units.DensityMildSteel)
		require.NoError(t, err)
		r2, err := calc.Mass(shape, d, units.DensityStainless)
		require.NoError(t, err)

		assert.Positive(t, r1.WeightKg, "shape %s", shape)
		ratio := units.DensityStainless / units.DensityMildSteel
		assert.InDelta(t, r1.WeightKg*ratio, r2.WeightKg, 1e-9, "shape %s", shape)
	}
}

func TestMassIsDeterministic(t *testing.T) {
	d := calc.Dimensions{Length: 3000, OuterDiameter: 150, WallThickness: 10}
	r1, err := calc.Mass(calc.Pipe, d, units.DensityMildSteel)
	require.NoError(t, err)
	r2, err := calc.Mass(calc.Pipe, d, units.DensityMildSteel)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestMassUnknownShape(t *testing.T) {
	_, err := calc.Mass("sphere", calc.Dimensions{}, units.DensityMildSteel)
	require.Error(t, err)
	assert.ErrorIs(t, err, calc.ErrUnknownShape)
}
