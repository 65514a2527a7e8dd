package convert

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the fixed-point precision used when a caller passes a
// non-positive places count.
const DefaultPlaces = 4

var (
	hundred     = decimal.NewFromInt(100)
	tenThousand = decimal.NewFromInt(10000)
)

// Display carries the rendered forms of a fraction-of-day.
//
// The composite subunits are successive decimal subdivisions of one day:
// Megacycles (1/100 AC), the Kilocycle digit (1/1000 AC) and the Cycle
// digit (1/10000 AC). They are derived by truncation, never rounding, so
// 0.12349 of a day reads 12 MC, 3 kC, 4 C; the trailing 9 is dropped.
type Display struct {
	FractionStr      string `json:"fraction"`
	PercentStr       string `json:"percent"`
	Hundredths       int    `json:"mc"` // 0..99
	ThousandthsDigit int    `json:"kc"` // 0..9
	UnitsDigit       int    `json:"c"`  // 0..9
}

// Composite renders the subunits as "MC.k.c", e.g. "54.3.2".
func (d Display) Composite() string {
	return fmt.Sprintf("%02d.%d.%d", d.Hundredths, d.ThousandthsDigit, d.UnitsDigit)
}

// FormatDisplay renders a fraction-of-day in [0,1) at the requested number
// of fixed decimal places. Strings are plain fixed-point, never scientific
// notation. Upstream guarantees the fraction is non-negative.
func FormatDisplay(fraction decimal.Decimal, places int) Display {
	if places <= 0 {
		places = DefaultPlaces
	}

	// Canonical ten-thousandths total, 0..9999, truncated.
	t := fraction.Mul(tenThousand).Truncate(0).IntPart()

	return Display{
		FractionStr:      fraction.StringFixed(int32(places)),
		PercentStr:       fraction.Mul(hundred).StringFixed(int32(places)),
		Hundredths:       int(t / 100),
		ThousandthsDigit: int((t % 100) / 10),
		UnitsDigit:       int(t % 10),
	}
}
