package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inPrinter groups digits the en-IN way: the last three, then pairs.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount the way Indian ledgers print it, with lakh and
// crore grouping and paise.
// Example: 123456.5 returns "₹1,23,456.50"
func FormatINR(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.INR)
	return formatIndian(amount, cur.Grapheme, cur.Fraction)
}

// FormatINRWhole is FormatINR rounded to whole rupees.
// Example: 123456.5 returns "₹1,23,457"
func FormatINRWhole(amount decimal.Decimal) string {
	return formatIndian(amount, money.GetCurrency(money.INR).Grapheme, 0)
}

// formatIndian groups the integer rupees through x/text and takes the
// fraction digits from the decimal itself, so large amounts keep every digit.
func formatIndian(amount decimal.Decimal, symbol string, fraction int) string {
	rounded := amount.Round(int32(fraction))
	abs := rounded.Abs()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString(symbol)
	b.WriteString(inPrinter.Sprint(number.Decimal(abs.IntPart())))
	if fraction > 0 {
		_, fracPart, _ := strings.Cut(abs.StringFixed(int32(fraction)), ".")
		b.WriteString(".")
		b.WriteString(fracPart)
	}
	return b.String()
}
