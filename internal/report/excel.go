package report

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/Nur-allhi/metalmetrica/internal/project"
)

// itemColumns is the flat column layout shared by the export and the import:
// one column per possible dimension, zero when the shape does not use it.
// Import reads the same order back and recovers the price per kg from the
// unit weight and unit cost columns; the trailing total columns are derived
// and never read.
var itemColumns = []string{
	"Name", "Type", "Length", "Width", "Thickness",
	"Outer Diameter", "Wall Thickness",
	"Flange Width", "Flange Thickness", "Web Height", "Web Thickness",
	"Diameter", "Inner Diameter",
	"Quantity", "Unit Weight (kg)", "Unit Cost", "Total Weight (kg)", "Total Cost",
}

// Excel writes the bill of materials as an xlsx workbook.
func (h *Handler) Excel(w http.ResponseWriter, r *http.Request) {
	p, _, _, ok := h.load(w, r)
	if !ok {
		return
	}

	f := buildWorkbook(p)
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"bill-of-materials.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func buildWorkbook(p *project.Project) *excelize.File {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, name := range itemColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for rowIdx, it := range p.Items {
		d := it.Dimensions
		values := []any{
			it.Name, string(it.Shape), d.Length, d.Width, d.Thickness,
			d.OuterDiameter, d.WallThickness,
			d.FlangeWidth, d.FlangeThickness, d.WebHeight, d.WebThickness,
			d.Diameter, d.InnerDiameter,
			it.Quantity, it.UnitWeight, nil, it.TotalWeight(), nil,
		}
		if it.UnitCost != nil {
			values[15] = *it.UnitCost
			values[17] = *it.TotalCost()
		}
		for colIdx, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summary := project.Summarize(p.Items, p.AdditionalCosts)
	totalRow := len(p.Items) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Project Totals")
	f.SetCellValue(sheet, fmt.Sprintf("Q%d", totalRow), summary.TotalWeight)
	if summary.GrandTotal != nil {
		f.SetCellValue(sheet, fmt.Sprintf("R%d", totalRow), *summary.GrandTotal)
	}
	return f
}
