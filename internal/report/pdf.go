// Package report renders a project's bill of materials as a PDF report or an
// xlsx workbook, and imports items from spreadsheets.
package report

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/phpdave11/gofpdf"

	"github.com/Nur-allhi/metalmetrica/internal/auth"
	"github.com/Nur-allhi/metalmetrica/internal/org"
	"github.com/Nur-allhi/metalmetrica/internal/project"
)

type Store interface {
	GetProject(ctx context.Context, userID int, id string) (*project.Project, error)
	UpdateProject(ctx context.Context, userID int, p *project.Project) error
	GetOrganization(ctx context.Context, userID int) (*org.Organization, error)
}

type Handler struct {
	Store Store
}

// PDF writes the weight/cost report. Cost columns appear only when the
// project tracks any cost; a project without prices is a pure weight report.
// Currency is rendered as the ISO code since the core PDF fonts cannot show
// every symbol.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	p, o, _, ok := h.load(w, r)
	if !ok {
		return
	}

	summary := project.Summarize(p.Items, p.AdditionalCosts)
	currency := "USD"
	if o != nil && o.Currency != "" {
		currency = o.Currency
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	if o != nil {
		pdf.Cell(0, 10, o.Name)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		if o.Address != "" {
			pdf.Cell(0, 5, o.Address)
			pdf.Ln(5)
		}
		if o.ContactNumber != "" {
			pdf.Cell(0, 5, o.ContactNumber)
			pdf.Ln(5)
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 14)
	}
	title := "Project Weight Report"
	if summary.HasCost {
		title = "Project Weight & Cost Report"
	}
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s (%s)", p.Name, p.Code))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", p.Customer))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{70, 35, 40, 20, 40}
	headers := []string{"Item", "Type", "Unit Weight (kg)", "Qty", "Total Weight (kg)"}
	if summary.HasCost {
		widths = append(widths, 35, 35)
		headers = append(headers, fmt.Sprintf("Unit Cost (%s)", currency), fmt.Sprintf("Total Cost (%s)", currency))
	}

	pdf.SetFont("Helvetica", "B", 10)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range p.Items {
		pdf.CellFormat(widths[0], 6, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, string(it.Shape), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", it.UnitWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", it.TotalWeight()), "1", 0, "R", false, 0, "")
		if summary.HasCost {
			pdf.CellFormat(widths[5], 6, money(it.UnitCost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[6], 6, money(it.TotalCost()), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	labelWidth := widths[0] + widths[1] + widths[2] + widths[3]
	pdf.CellFormat(labelWidth, 7, "Project Totals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f kg", summary.TotalWeight), "1", 0, "R", false, 0, "")
	if summary.HasCost {
		pdf.CellFormat(widths[5], 7, "", "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 7, money(summary.ItemSubtotal), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)

	if summary.HasCost {
		costWidth := labelWidth + widths[4] + widths[5]
		pdf.SetFont("Helvetica", "", 10)
		for _, c := range p.AdditionalCosts {
			pdf.CellFormat(costWidth, 6, c.Description, "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f", c.Amount), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		if len(p.AdditionalCosts) > 0 {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(costWidth, 7, "Grand Total", "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[6], 7, money(summary.GrandTotal), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	if o != nil && len(o.Terms) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Terms & Conditions")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		for _, t := range o.Terms {
			pdf.MultiCell(0, 5, t.Text, "", "L", false)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func money(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*project.Project, *org.Organization, int, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, nil, 0, false
	}

	p, err := h.Store.GetProject(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		log.Printf("GetProject Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return nil, nil, 0, false
	}
	if p == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return nil, nil, 0, false
	}

	o, err := h.Store.GetOrganization(r.Context(), userID)
	if err != nil {
		log.Printf("GetOrganization Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return nil, nil, 0, false
	}
	return p, o, userID, true
}
