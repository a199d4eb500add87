package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/item"
	"github.com/Nur-allhi/metalmetrica/internal/project"
)

func floatPtr(v float64) *float64 { return &v }

func TestSummarizeEmpty(t *testing.T) {
	s := project.Summarize(nil, nil)

	assert.Zero(t, s.TotalWeight)
	assert.False(t, s.HasCost)
	assert.Nil(t, s.ItemSubtotal)
	assert.Nil(t, s.GrandTotal, "no cost data must report as absent, not zero")
	assert.Zero(t, s.AdditionalCostsTotal)
	assert.Empty(t, s.ByType)
}

func TestSummarizeWeightOnly(t *testing.T) {
	items := []item.SteelItem{
		{ID: "a", Shape: calc.Plate, Quantity: 4, UnitWeight: 150.72},
		{ID: "b", Shape: calc.Pipe, Quantity: 2, UnitWeight: 51.79},
	}
	s := project.Summarize(items, nil)

	assert.InDelta(t, 150.72*4+51.79*2, s.TotalWeight, 1e-9)
	assert.False(t, s.HasCost)
	assert.Nil(t, s.GrandTotal)

	require.Len(t, s.ByType, 2)
	assert.Nil(t, s.ByType[0].Cost)
	assert.Nil(t, s.ByType[0].AvgPricePerKg)
}

func TestSummarizeMixedCosts(t *testing.T) {
	// One priced item, one without: the unpriced item still contributes its
	// weight but adds zero to the subtotal.
	items := []item.SteelItem{
		{ID: "a", Shape: calc.Plate, Quantity: 4, UnitWeight: 150.72, UnitCost: floatPtr(120.576)},
		{ID: "b", Shape: calc.Plate, Quantity: 1, UnitWeight: 10},
	}
	s := project.Summarize(items, nil)

	assert.True(t, s.HasCost)
	assert.InDelta(t, 150.72*4+10, s.TotalWeight, 1e-9)
	require.NotNil(t, s.ItemSubtotal)
	assert.InDelta(t, 482.304, *s.ItemSubtotal, 1e-9)
	require.NotNil(t, s.GrandTotal)
	assert.InDelta(t, 482.304, *s.GrandTotal, 1e-9)
}

func TestSummarizeAdditionalCosts(t *testing.T) {
	items := []item.SteelItem{
		{ID: "a", Shape: calc.Plate, Quantity: 4, UnitWeight: 150.72, UnitCost: floatPtr(120.576)},
	}
	costs := []project.AdditionalCost{
		{ID: "c1", Description: "Transport", Amount: 100},
		{ID: "c2", Description: "Labor", Amount: 250.5},
	}
	s := project.Summarize(items, costs)

	assert.InDelta(t, 350.5, s.AdditionalCostsTotal, 1e-9)
	require.NotNil(t, s.GrandTotal)
	assert.InDelta(t, 482.304+350.5, *s.GrandTotal, 1e-9)
}

func TestSummarizeAdditionalCostsAloneEnableCost(t *testing.T) {
	items := []item.SteelItem{{ID: "a", Shape: calc.Plate, Quantity: 1, UnitWeight: 10}}
	costs := []project.AdditionalCost{{ID: "c1", Description: "Tax", Amount: 50}}

	s := project.Summarize(items, costs)
	assert.True(t, s.HasCost)
	require.NotNil(t, s.ItemSubtotal)
	assert.Zero(t, *s.ItemSubtotal)
	require.NotNil(t, s.GrandTotal)
	assert.InDelta(t, 50, *s.GrandTotal, 1e-9)
}

func TestSummarizeGroups(t *testing.T) {
	items := []item.SteelItem{
		{ID: "a", Shape: calc.Pipe, Quantity: 2, UnitWeight: 50, UnitCost: floatPtr(40)},
		{ID: "b", Shape: calc.Plate, Quantity: 1, UnitWeight: 100, UnitCost: floatPtr(80)},
		{ID: "c", Shape: calc.Pipe, Quantity: 1, UnitWeight: 30, UnitCost: floatPtr(24)},
	}
	s := project.Summarize(items, nil)

	require.Len(t, s.ByType, 2)
	// First-occurrence order.
	assert.Equal(t, calc.Pipe, s.ByType[0].Shape)
	assert.Equal(t, calc.Plate, s.ByType[1].Shape)

	assert.InDelta(t, 130, s.ByType[0].Weight, 1e-9) // 50*2 + 30*1
	require.NotNil(t, s.ByType[0].Cost)
	assert.InDelta(t, 104, *s.ByType[0].Cost, 1e-9) // 40*2 + 24*1
	require.NotNil(t, s.ByType[0].AvgPricePerKg)
	assert.InDelta(t, 0.8, *s.ByType[0].AvgPricePerKg, 1e-9)

	// Group weights partition the total: nothing dropped, nothing counted twice.
	var groupSum float64
	for _, g := range s.ByType {
		groupSum += g.Weight
	}
	assert.Equal(t, s.TotalWeight, groupSum)
}

func TestSummarizeIdempotent(t *testing.T) {
	items := []item.SteelItem{
		{ID: "a", Shape: calc.Girder, Quantity: 3, UnitWeight: 376.8, UnitCost: floatPtr(300)},
		{ID: "b", Shape: calc.Circular, Quantity: 5, UnitWeight: 13.8},
	}
	s1 := project.Summarize(items, nil)
	s2 := project.Summarize(items, nil)
	assert.Equal(t, s1, s2)
}
