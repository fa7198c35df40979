package price_test

import (
	"testing"

	"app/internal/price"

	"github.com/stretchr/testify/assert"
)

func TestParse_CurrencySymbolStripped(t *testing.T) {
	v, warn := price.Parse("$12.34")
	assert.Nil(t, warn)
	assert.InDelta(t, 12.34, v, 1e-9)
}

func TestParse_WholeNumber(t *testing.T) {
	v, warn := price.Parse("$3")
	assert.Nil(t, warn)
	assert.InDelta(t, 3.0, v, 1e-9)
}

func TestParse_ThousandsSeparator(t *testing.T) {
	v, warn := price.Parse("$1,234.50")
	assert.Nil(t, warn)
	assert.InDelta(t, 1234.50, v, 1e-9)
}

func TestParse_Unparsable_ZeroWithWarning(t *testing.T) {
	v, warn := price.Parse("free")
	assert.InDelta(t, 0, v, 1e-9)
	assert.NotNil(t, warn)
	assert.Contains(t, warn.Error(), "free")
}

func TestParse_Empty_ZeroWithWarning(t *testing.T) {
	v, warn := price.Parse("")
	assert.InDelta(t, 0, v, 1e-9)
	assert.NotNil(t, warn)
}

func TestParse_MultipleDots_ZeroWithWarning(t *testing.T) {
	v, warn := price.Parse("1.2.3")
	assert.InDelta(t, 0, v, 1e-9)
	assert.NotNil(t, warn)
}
