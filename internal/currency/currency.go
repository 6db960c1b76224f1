// Package currency formats rupiah amounts the way the dashboard shows them.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as integer rupiah with id-ID grouping,
// e.g. 12000000 -> "Rp 12.000.000". Fractions are rounded off; IDR has no
// minor unit in practice.
func FormatIDR(amount decimal.Decimal) string {
	return printer.Sprintf("Rp %v", number.Decimal(
		amount.Round(0).IntPart(),
		number.MaxFractionDigits(0),
	))
}
