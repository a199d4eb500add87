package report

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/item"
)

type ImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Items   []item.SteelItem `json:"items"`
}

// Import reads items from an uploaded xlsx file laid out like the export
// (one column per dimension, then quantity, unit weight and unit cost) and
// appends every row that valuates cleanly. Bad rows are skipped, not fatal.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	p, _, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	result := ImportResult{Items: []item.SteelItem{}}
	for i := 1; i < len(rows); i++ {
		req, err := parseItemRow(rows[i])
		if err != nil {
			result.Skipped++
			continue
		}
		it, err := item.Valuate(req)
		if err != nil {
			result.Skipped++
			continue
		}
		result.Items = append(result.Items, it)
	}
	result.Count = len(result.Items)

	if result.Count > 0 {
		p.Items = append(p.Items, result.Items...)
		if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
			log.Printf("UpdateProject Error: %v", err)
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parseItemRow consumes a row in the export's column order: name, type, the
// eleven dimension columns, quantity, unit weight, unit cost. The price per
// kg is recovered as unit cost over unit weight; the total columns after it
// are derived values and never read.
func parseItemRow(row []string) (item.Request, error) {
	if len(row) < 14 {
		return item.Request{}, fmt.Errorf("bad row")
	}

	req := item.Request{
		Name:  strings.TrimSpace(row[0]),
		Shape: calc.Shape(strings.TrimSpace(row[1])),
	}

	dims := make([]float64, 11)
	for i := 0; i < 11; i++ {
		v, err := toFloat(row[2+i])
		if err != nil {
			return item.Request{}, err
		}
		dims[i] = v
	}
	req.Dimensions = calc.Dimensions{
		Length: dims[0], Width: dims[1], Thickness: dims[2],
		OuterDiameter: dims[3], WallThickness: dims[4],
		FlangeWidth: dims[5], FlangeThickness: dims[6],
		WebHeight: dims[7], WebThickness: dims[8],
		Diameter: dims[9], InnerDiameter: dims[10],
	}

	qty, err := toFloat(row[13])
	if err != nil {
		return item.Request{}, err
	}
	req.Quantity = int(qty)

	if len(row) > 15 && strings.TrimSpace(row[15]) != "" {
		unitWeight, err := toFloat(row[14])
		if err != nil {
			return item.Request{}, err
		}
		unitCost, err := toFloat(row[15])
		if err != nil {
			return item.Request{}, err
		}
		if unitWeight <= 0 {
			return item.Request{}, fmt.Errorf("unit cost without unit weight")
		}
		price := unitCost / unitWeight
		req.PricePerKg = &price
	}
	return req, nil
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
