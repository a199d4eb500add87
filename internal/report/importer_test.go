package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/item"
	"github.com/Nur-allhi/metalmetrica/internal/project"
)

func TestParseItemRow(t *testing.T) {
	row := []string{
		"Base plate", "plate",
		"1200", "800", "20", "0", "0", "0", "0", "0", "0", "0", "0",
		"4", "150.72", "120.576", "602.88", "482.304",
	}
	req, err := parseItemRow(row)
	require.NoError(t, err)

	assert.Equal(t, "Base plate", req.Name)
	assert.Equal(t, calc.Plate, req.Shape)
	assert.Equal(t, calc.Dimensions{Length: 1200, Width: 800, Thickness: 20}, req.Dimensions)
	assert.Equal(t, 4, req.Quantity)
	require.NotNil(t, req.PricePerKg)
	assert.InDelta(t, 0.8, *req.PricePerKg, 1e-9)
}

func TestParseItemRowWithoutPrice(t *testing.T) {
	row := []string{
		"Pipe run", "pipe",
		"3000", "0", "0", "150", "10", "0", "0", "0", "0", "0", "0",
		"2", "103.58", "", "207.16",
	}
	req, err := parseItemRow(row)
	require.NoError(t, err)

	assert.Nil(t, req.PricePerKg)
	assert.Equal(t, calc.Pipe, req.Shape)
	assert.Equal(t, 150.0, req.Dimensions.OuterDiameter)
}

func TestParseItemRowRejectsGarbage(t *testing.T) {
	_, err := parseItemRow([]string{"too", "short"})
	assert.Error(t, err)

	_, err = parseItemRow([]string{
		"x", "plate",
		"abc", "800", "20", "0", "0", "0", "0", "0", "0", "0", "0",
		"4",
	})
	assert.Error(t, err)

	// A cost cell with no unit weight to divide by is unusable.
	_, err = parseItemRow([]string{
		"x", "plate",
		"1200", "800", "20", "0", "0", "0", "0", "0", "0", "0", "0",
		"4", "", "120.576",
	})
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	price := 0.8
	priced, err := item.Valuate(item.Request{
		Name:  "Base plate",
		Shape: calc.Plate,
		Dimensions: calc.Dimensions{
			Length: 1200, Width: 800, Thickness: 20,
		},
		Quantity:   4,
		PricePerKg: &price,
	})
	require.NoError(t, err)

	unpriced, err := item.Valuate(item.Request{
		Name:  "Pipe run",
		Shape: calc.Pipe,
		Dimensions: calc.Dimensions{
			Length: 3000, OuterDiameter: 150, WallThickness: 10,
		},
		Quantity: 2,
	})
	require.NoError(t, err)

	p := &project.Project{
		ID:        "p1",
		Name:      "Warehouse frame",
		Items:     []item.SteelItem{priced, unpriced},
		CreatedAt: time.Now(),
	}

	f := buildWorkbook(p)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 1+len(p.Items))

	for i, want := range p.Items {
		req, err := parseItemRow(rows[1+i])
		require.NoError(t, err, "row %d", i)
		got, err := item.Valuate(req)
		require.NoError(t, err, "row %d", i)

		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Shape, got.Shape)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.InDelta(t, want.UnitWeight, got.UnitWeight, 1e-9)
		if want.UnitCost == nil {
			assert.Nil(t, got.UnitCost)
		} else {
			require.NotNil(t, got.UnitCost)
			assert.InDelta(t, *want.UnitCost, *got.UnitCost, 1e-9)
		}
	}
}
