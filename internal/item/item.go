// Package item turns a validated dimension set plus quantity and optional
// price into a persistable steel item.
package item

import (
	"github.com/google/uuid"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/units"
)

// SteelItem is one line of a project's bill of materials. UnitWeight and
// UnitCost are always per single piece; consumers multiply by Quantity
// themselves. A nil UnitCost means "no price supplied", which is not the
// same as a price of zero.
type SteelItem struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Shape      calc.Shape            `json:"type"`
	Dimensions calc.Dimensions       `json:"dimensions"`
	Quantity   int                   `json:"quantity"`
	UnitWeight float64               `json:"unitWeight"`
	UnitCost   *float64              `json:"unitCost"`
	Girder     *calc.GirderBreakdown `json:"girder,omitempty"`
}

// TotalWeight is UnitWeight times quantity.
func (it SteelItem) TotalWeight() float64 {
	return it.UnitWeight * float64(it.Quantity)
}

// TotalCost is UnitCost times quantity, nil when no price was supplied.
func (it SteelItem) TotalCost() *float64 {
	if it.UnitCost == nil {
		return nil
	}
	total := *it.UnitCost * float64(it.Quantity)
	return &total
}

// Request is a valuation request. An explicit Density wins; otherwise the
// density is looked up from the steel Grade ("MS", "SS"), defaulting to mild
// steel. PricePerKg nil leaves the item without a cost.
type Request struct {
	Name       string          `json:"name"`
	Shape      calc.Shape      `json:"type"`
	Dimensions calc.Dimensions `json:"dimensions"`
	Quantity   int             `json:"quantity"`
	Grade      string          `json:"grade,omitempty"`
	Density    float64         `json:"density,omitempty"`
	PricePerKg *float64        `json:"pricePerKg,omitempty"`
}

// Valuate validates the dimensions, runs the shape calculator and assembles
// the item record. Editing an item is re-running Valuate with the new inputs;
// nothing is patched incrementally.
func Valuate(req Request) (SteelItem, error) {
	if err := calc.Validate(req.Shape, req.Dimensions); err != nil {
		return SteelItem{}, err
	}
	if req.Quantity < 1 {
		return SteelItem{}, &calc.ValidationError{Fields: []calc.FieldError{
			{Field: "quantity", Message: "quantity must be at least 1"},
		}}
	}
	if req.PricePerKg != nil && *req.PricePerKg < 0 {
		return SteelItem{}, &calc.ValidationError{Fields: []calc.FieldError{
			{Field: "pricePerKg", Message: "price must not be negative"},
		}}
	}

	density := req.Density
	if density <= 0 {
		density = units.DensityForGrade(req.Grade)
	}

	res, err := calc.Mass(req.Shape, req.Dimensions, density)
	if err != nil {
		return SteelItem{}, err
	}

	it := SteelItem{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Shape:      req.Shape,
		Dimensions: req.Dimensions,
		Quantity:   req.Quantity,
		UnitWeight: res.WeightKg,
		Girder:     res.Girder,
	}
	if req.PricePerKg != nil {
		cost := res.WeightKg * *req.PricePerKg
		it.UnitCost = &cost
	}
	return it, nil
}
