package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const DefaultSymbol = "₹"

var hundred = decimal.NewFromInt(100)

// Currency renders an amount as symbol, major unit, dot, and the minor unit
// padded to two digits. The minor unit is rounded half away from zero.
func Currency(symbol string, d decimal.Decimal) string {
	d = d.Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	major := d.Truncate(0)
	minor := d.Sub(major).Mul(hundred).IntPart()
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, major.String(), minor)
}
