// Package format renders calculation values for people: currency, areas and
// percentages the way the estimate screens and exports show them.
package format

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const currencySymbol = "₫"

var printer = message.NewPrinter(language.Vietnamese)

// Currency formats a VND amount with Vietnamese digit grouping, e.g. "1.008.000.000 ₫".
func Currency(amount float64) string {
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0))) + " " + currencySymbol
}

// Number formats an amount with Vietnamese grouping and no currency symbol.
func Number(amount float64) string {
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Area rounds to one decimal place, half away from zero.
func Area(area float64) string {
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return strconv.FormatFloat(area, 'f', -1, 64)
	}
	return decimal.NewFromFloat(area).StringFixed(1)
}

// Percent renders a coefficient fraction as a whole percentage, e.g. 0.4 -> "40%".
func Percent(coefficient float64) string {
	return strconv.Itoa(int(math.Round(coefficient*100))) + "%"
}

// ExactPercent renders a coefficient as a percentage without rounding, e.g.
// 0.456 -> "45.6%".
func ExactPercent(coefficient float64) string {
	if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) {
		return strconv.FormatFloat(coefficient*100, 'f', -1, 64) + "%"
	}
	return decimal.NewFromFloat(coefficient).Shift(2).String() + "%"
}

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// ASCII strips Vietnamese diacritics for fonts that only cover Latin-1.
// A transform chain keeps internal buffers, so each call builds its own.
func ASCII(s string) string {
	s = dStroke.Replace(s)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}
	return out
}
