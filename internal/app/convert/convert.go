// Package convert implements the precision arithmetic layer: exact
// conversion of Unix timestamps into elapsed seconds and (day index,
// fraction-of-day) pairs under a planetary profile.
//
// Every operation here is a pure function of its inputs. Addition,
// subtraction and multiplication on decimals are exact by construction; the
// single division (remainder / day length) carries divPrecision digits,
// threaded explicitly through the call. No package-global precision setting
// is read or written, so concurrent conversions never interfere.
package convert

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/astrocycle/dectime/internal/domain"
)

// divPrecision is the number of decimal digits carried by the fraction
// division. The fraction lives in [0,1), so 50 decimal places means 50
// significant digits.
const divPrecision = 50

var one = decimal.NewFromInt(1)

// FromFloat converts a native float64 timestamp to an exact decimal through
// its canonical shortest round-trip string. Widening the binary value
// directly would manifest spurious low-order digits (12345.6789 becoming
// 12345.67889999999...), so the textual hop is mandatory for float inputs.
// Integers and already-exact decimals need no such step.
func FromFloat(f float64) (decimal.Decimal, error) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("timestamp %v has no decimal form: %w", f, err)
	}
	return d, nil
}

// Converter converts Unix timestamps to decimal time for one profile.
// The profile is copied at construction and never mutated.
type Converter struct {
	profile domain.PlanetProfile
}

// New creates a converter bound to a profile.
func New(profile domain.PlanetProfile) *Converter {
	return &Converter{profile: profile}
}

// Profile returns the profile this converter was built with.
func (c *Converter) Profile() domain.PlanetProfile { return c.profile }

// ToElapsedSeconds shifts a Unix timestamp onto the profile's epoch.
// Subtraction of exact decimals is exact; no digits are gained or lost.
func (c *Converter) ToElapsedSeconds(ts decimal.Decimal) decimal.Decimal {
	return ts.Sub(c.profile.EpochOffsetSeconds)
}

// ElapsedToDayFraction splits elapsed seconds into the integer day index
// (one day = one Astrocycle) and the fraction of the current day.
//
// The day index is the true mathematical floor of elapsed/dayLength, so
// times before the epoch land on negative days: -1 second on Earth is day
// -1, not day 0. The fraction is guaranteed to lie in [0,1) regardless of
// sign.
func (c *Converter) ElapsedToDayFraction(elapsed decimal.Decimal) (int64, decimal.Decimal, error) {
	spd := c.profile.SecondsPerDay
	if spd.Sign() <= 0 {
		return 0, decimal.Zero, fmt.Errorf("%w: seconds_per_day must be positive, got %s", domain.ErrInvalidConfig, spd)
	}

	// QuoRem truncates toward zero; shift a negative remainder up one day
	// to get floor semantics.
	day, rem := elapsed.QuoRem(spd, 0)
	if rem.Sign() < 0 {
		day = day.Sub(one)
		rem = rem.Add(spd)
	}
	dayIndex := day.IntPart()

	fraction := rem.DivRound(spd, divPrecision)

	// The floor logic above keeps the fraction in range on its own; these
	// two adjustments pin down the [0,1) invariant against rounding at the
	// day boundary.
	if fraction.Sign() < 0 {
		dayIndex--
		fraction = fraction.Add(one)
	}
	if fraction.GreaterThanOrEqual(one) {
		dayIndex++
		fraction = decimal.Zero
	}
	return dayIndex, fraction, nil
}

// Result is a fully converted timestamp: the day index, the exact fraction,
// and its rendered display forms.
type Result struct {
	DayIndex int64           `json:"day_index"`
	Fraction decimal.Decimal `json:"fraction"`
	Display  Display         `json:"display"`
}

// DisplayFor runs the whole pipeline for one timestamp: epoch shift, floor
// split, display formatting.
func (c *Converter) DisplayFor(ts decimal.Decimal, places int) (Result, error) {
	elapsed := c.ToElapsedSeconds(ts)
	dayIndex, fraction, err := c.ElapsedToDayFraction(elapsed)
	if err != nil {
		return Result{}, err
	}
	return Result{
		DayIndex: dayIndex,
		Fraction: fraction,
		Display:  FormatDisplay(fraction, places),
	}, nil
}
