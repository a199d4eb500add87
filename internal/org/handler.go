package org

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Nur-allhi/metalmetrica/internal/auth"
	"github.com/Nur-allhi/metalmetrica/internal/units"
)

type Store interface {
	GetOrganization(ctx context.Context, userID int) (*Organization, error)
	SaveOrganization(ctx context.Context, userID int, o Organization) error
}

type Handler struct {
	Store Store
}

type response struct {
	Organization
	CurrencySymbol string `json:"currencySymbol"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	o, err := h.Store.GetOrganization(r.Context(), userID)
	if err != nil {
		log.Printf("GetOrganization Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if o == nil {
		http.Error(w, "Organization not set up", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Organization: *o, CurrencySymbol: units.CurrencySymbol(o.Currency)})
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var o Organization
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if o.Name == "" {
		http.Error(w, "Organization name required", http.StatusBadRequest)
		return
	}

	if err := h.Store.SaveOrganization(r.Context(), userID, o); err != nil {
		log.Printf("SaveOrganization Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Organization: o, CurrencySymbol: units.CurrencySymbol(o.Currency)})
}
