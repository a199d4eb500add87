package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nur-allhi/metalmetrica/internal/calc"
	"github.com/Nur-allhi/metalmetrica/internal/units"
)

type Handler struct{}

// CalcResponse is the quick-calculator payload: the valued item plus the
// quantity-multiplied totals the form displays. DisplayWeight/DisplayUnit
// carry the lbs rendering for the legacy imperial plate.
type CalcResponse struct {
	Item          SteelItem `json:"item"`
	TotalWeight   float64   `json:"totalWeight"`
	TotalCost     *float64  `json:"totalCost"`
	DisplayWeight float64   `json:"displayWeight"`
	DisplayUnit   string    `json:"displayUnit"`
}

// Calc valuates a single item without persisting it.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	it, err := Valuate(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := CalcResponse{
		Item:          it,
		TotalWeight:   it.TotalWeight(),
		TotalCost:     it.TotalCost(),
		DisplayWeight: it.TotalWeight(),
		DisplayUnit:   "kg",
	}
	if it.Shape == calc.PlateImperial {
		resp.DisplayWeight = it.TotalWeight() * units.KgToLb
		resp.DisplayUnit = "lbs"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// WriteError maps engine errors to HTTP responses: validation failures become
// a structured 422 body, unknown shapes a 400, anything else a 500.
func WriteError(w http.ResponseWriter, err error) {
	var verr *calc.ValidationError
	if errors.As(err, &verr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(verr)
		return
	}
	if errors.Is(err, calc.ErrUnknownShape) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}
