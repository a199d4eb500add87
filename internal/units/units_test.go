package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nur-allhi/metalmetrica/internal/units"
)

func TestDensityForGrade(t *testing.T) {
	assert.Equal(t, 7850.0, units.DensityForGrade("MS"))
	assert.Equal(t, 8000.0, units.DensityForGrade("SS"))
	assert.Equal(t, 7850.0, units.DensityForGrade(""), "unknown grades fall back to mild steel")
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", units.CurrencySymbol("USD"))
	assert.Equal(t, "€", units.CurrencySymbol("EUR"))
	assert.Equal(t, "৳", units.CurrencySymbol("BDT"))
	assert.Equal(t, "$", units.CurrencySymbol(""), "default is the dollar sign")
}
