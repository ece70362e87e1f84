package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR memformat nominal rupiah gaya id-ID (pemisah ribuan titik),
// tanpa desimal: 150000 → "Rp150.000".
func FormatIDR(amount int64) string {
	return idrPrinter.Sprintf("Rp%d", amount)
}
