package ui

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Money formats amount in the given ISO currency, rounded to the currency's
// minor unit ("$2.50", "€9.99"). Unknown codes and amounts too large for
// int64 minor units fall back to "2.50 XYZ".
func Money(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinor) {
		return fmt.Sprintf("%.2f %s", amount, cur.Code)
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// Price formats a unit price without dropping digits past the currency's
// minor unit: 0.125 USD is "$0.125", 2.5 USD is "$2.50".
func Price(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%v %s", amount, currency)
	}
	d := decimal.NewFromFloat(amount)
	cur := money.GetCurrency(currency)
	places := 2
	if cur != nil {
		places = cur.Fraction
	}
	if exp := -int(d.Exponent()); exp > places {
		places = exp
	}
	if cur == nil {
		return fmt.Sprintf("%s %s", d.StringFixed(int32(places)), currency)
	}
	minor := d.Shift(int32(places))
	if minor.Abs().GreaterThan(maxMinor) {
		return fmt.Sprintf("%s %s", d.String(), cur.Code)
	}
	f := money.NewFormatter(places, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(minor.IntPart())
}
