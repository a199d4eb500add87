package project

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Nur-allhi/metalmetrica/internal/auth"
	"github.com/Nur-allhi/metalmetrica/internal/item"
)

// Store is the slice of the repository the project handlers need.
type Store interface {
	CreateProject(ctx context.Context, userID int, p *Project) error
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID int, id string) (*Project, error)
	UpdateProject(ctx context.Context, userID int, p *Project) error
	DeleteProject(ctx context.Context, userID int, id string) error
}

type Handler struct {
	Store Store
}

type createRequest struct {
	Name     string `json:"name"`
	Customer string `json:"customer"`
	Code     string `json:"projectId"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Project name required", http.StatusBadRequest)
		return
	}

	p := &Project{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Customer:  req.Customer,
		Code:      req.Code,
		Items:     []item.SteelItem{},
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateProject(r.Context(), userID, p); err != nil {
		log.Printf("CreateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.Store.ListProjects(r.Context(), userID)
	if err != nil {
		log.Printf("ListProjects Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []Project{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

type updateRequest struct {
	Name     string `json:"name"`
	Customer string `json:"customer"`
	Code     string `json:"projectId"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Customer = req.Customer
	p.Code = req.Code

	if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
		log.Printf("UpdateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Store.DeleteProject(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		log.Printf("DeleteProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary aggregates the project's bill of materials.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Summarize(p.Items, p.AdditionalCosts))
}

// AddItem valuates the submitted dimensions and appends the resulting item.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	p, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	var req item.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	it, err := item.Valuate(req)
	if err != nil {
		item.WriteError(w, err)
		return
	}

	p.Items = append(p.Items, it)
	if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
		log.Printf("UpdateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(it)
}

// UpdateItem re-runs the full valuation from the new dimension set and
// replaces the stored item; nothing is patched in place.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	p, userID, ok := h.load(w, r)
	if !ok {
		return
	}
	itemID := mux.Vars(r)["itemID"]

	var req item.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	it, err := item.Valuate(req)
	if err != nil {
		item.WriteError(w, err)
		return
	}
	it.ID = itemID // the id is stable across edits

	replaced := false
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			p.Items[i] = it
			replaced = true
			break
		}
	}
	if !replaced {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
		log.Printf("UpdateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(it)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	p, userID, ok := h.load(w, r)
	if !ok {
		return
	}
	itemID := mux.Vars(r)["itemID"]

	kept := p.Items[:0]
	found := false
	for _, it := range p.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	p.Items = kept

	if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
		log.Printf("UpdateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type costsRequest struct {
	AdditionalCosts []AdditionalCost `json:"additionalCosts"`
}

// SetCosts replaces the project's additional-cost list. Entries need a
// non-empty description and a non-negative amount; missing ids are filled in.
func (h *Handler) SetCosts(w http.ResponseWriter, r *http.Request) {
	p, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	var req costsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	for i := range req.AdditionalCosts {
		c := &req.AdditionalCosts[i]
		if c.Description == "" {
			http.Error(w, "Cost description required", http.StatusBadRequest)
			return
		}
		if c.Amount < 0 {
			http.Error(w, "Cost amount must not be negative", http.StatusBadRequest)
			return
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
	}

	p.AdditionalCosts = req.AdditionalCosts
	if err := h.Store.UpdateProject(r.Context(), userID, p); err != nil {
		log.Printf("UpdateProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p.AdditionalCosts)
}

// load fetches the project from the path id and checks ownership. On failure
// it has already written the response.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Project, int, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, 0, false
	}

	p, err := h.Store.GetProject(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		log.Printf("GetProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return nil, 0, false
	}
	if p == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return nil, 0, false
	}
	return p, userID, true
}
