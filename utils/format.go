package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// All outbound content renders money and dates the same way: Spanish
// locale, thousands separators, euro suffix.
var esPrinter = message.NewPrinter(language.Spanish)

// FormatEUR renders a money value with es-ES grouping and a euro suffix,
// e.g. 1234.0 -> "1.234 €".
func FormatEUR(v float64) string {
	return esPrinter.Sprintf("%v €", number.Decimal(v,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
}

// FormatDateTime renders a timestamp the way the Spanish locale writes it.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
