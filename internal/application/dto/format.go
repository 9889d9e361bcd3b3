package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Los cálculos conservan precisión completa; el redondeo ocurre solo aquí, al presentar.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD ej. 1500 -> "$1,500.00".
func FormatUSD(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// FormatPercent ej. 66.6666 -> "66.7%".
func FormatPercent(p float64) string {
	return printer.Sprintf("%.1f%%", p)
}
