// Package units holds the fixed conversion factors and steel densities used
// by every calculator. All densities are kg/m^3.
package units

const (
	DensityMildSteel = 7850.0
	DensityStainless = 8000.0

	KgToLb = 2.20462
	InToMm = 25.4
	MToFt  = 3.28084
	MmToFt = 1.0 / 304.8
)

// DensityForGrade maps a steel grade code to its density. Unknown grades
// fall back to mild steel, the default everywhere in the app.
func DensityForGrade(grade string) float64 {
	switch grade {
	case "SS":
		return DensityStainless
	default:
		return DensityMildSteel
	}
}

// CurrencySymbol returns the display symbol for an ISO currency code.
// Presentation only, never a computational input.
func CurrencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "INR":
		return "₹"
	case "BDT":
		return "৳"
	default:
		return "$"
	}
}
