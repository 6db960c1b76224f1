package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatIDR_Grouping(t *testing.T) {
	assert.Equal(t, "Rp 12.000.000", FormatIDR(decimal.NewFromInt(12000000)))
	assert.Equal(t, "Rp 1.500.000", FormatIDR(decimal.NewFromInt(1500000)))
	assert.Equal(t, "Rp 500", FormatIDR(decimal.NewFromInt(500)))
	assert.Equal(t, "Rp 0", FormatIDR(decimal.Zero))
}

func TestFormatIDR_RoundsFractions(t *testing.T) {
	assert.Equal(t, "Rp 1.000", FormatIDR(decimal.RequireFromString("999.50")))
	assert.Equal(t, "Rp 999", FormatIDR(decimal.RequireFromString("999.49")))
}
