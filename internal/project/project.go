// Package project holds the project entity and the bill-of-materials
// aggregation that feeds reports.
package project

import (
	"time"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/item"
)

// AdditionalCost is a flat project-level fee (transport, labor, tax) that
// only affects the grand total, never the weight figures.
type AdditionalCost struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Project struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Customer        string           `json:"customer"`
	Code            string           `json:"projectId"` // display code shown on reports
	Items           []item.SteelItem `json:"items"`
	AdditionalCosts []AdditionalCost `json:"additionalCosts,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// TypeSummary is the per-shape rollup. Cost and AvgPricePerKg are nil when
// the project tracks no cost or the group has no weight.
type TypeSummary struct {
	Shape         calc.Shape `json:"type"`
	Weight        float64    `json:"weight"`
	Cost          *float64   `json:"cost"`
	AvgPricePerKg *float64   `json:"avgPricePerKg"`
}

// Summary is the project rollup. GrandTotal is nil when no item carries a
// cost and there are no additional costs: "cost not tracked" must stay
// distinguishable from a total of zero.
type Summary struct {
	TotalWeight          float64       `json:"totalWeight"`
	HasCost              bool          `json:"hasCost"`
	ItemSubtotal         *float64      `json:"itemSubtotal"`
	AdditionalCostsTotal float64       `json:"additionalCostsTotal"`
	GrandTotal           *float64      `json:"grandTotal"`
	ByType               []TypeSummary `json:"byType"`
}

// Summarize aggregates valued items and additional costs. Items with a nil
// cost still contribute their full weight; they only contribute zero to the
// cost subtotal. Groups appear in first-occurrence order.
func Summarize(items []item.SteelItem, costs []AdditionalCost) Summary {
	s := Summary{}

	for _, c := range costs {
		s.AdditionalCostsTotal += c.Amount
	}
	s.HasCost = len(costs) > 0

	type group struct {
		weight float64
		cost   float64
	}
	groups := map[calc.Shape]*group{}
	var order []calc.Shape

	var subtotal float64
	for _, it := range items {
		s.TotalWeight += it.TotalWeight()
		if it.UnitCost != nil {
			s.HasCost = true
			subtotal += *it.UnitCost * float64(it.Quantity)
		}

		g, ok := groups[it.Shape]
		if !ok {
			g = &group{}
			groups[it.Shape] = g
			order = append(order, it.Shape)
		}
		g.weight += it.TotalWeight()
		if it.UnitCost != nil {
			g.cost += *it.UnitCost * float64(it.Quantity)
		}
	}

	if s.HasCost {
		s.ItemSubtotal = &subtotal
		grand := subtotal + s.AdditionalCostsTotal
		s.GrandTotal = &grand
	}

	for _, shape := range order {
		g := groups[shape]
		ts := TypeSummary{Shape: shape, Weight: g.weight}
		if s.HasCost {
			cost := g.cost
			ts.Cost = &cost
			if g.weight > 0 {
				avg := cost / g.weight
				ts.AvgPricePerKg = &avg
			}
		}
		s.ByType = append(s.ByType, ts)
	}
	return s
}
