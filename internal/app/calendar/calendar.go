// Package calendar implements the Decimal Solar Calendar (DSC): a 10-month
// overlay of the civil year. Months alternate 36/37 days (365 in total) and
// a leap year extends month 10 by exactly one day.
//
// The calendar is pure: month lengths are a function of (year, leap rule)
// alone, so calls never interfere and results never depend on call order.
package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/astrocycle/dectime/internal/domain"
)

// MonthsPerYear is the number of DSC months.
const MonthsPerYear = 10

// Non-leap sequence, sum 365. Month 10 absorbs the leap day.
var baseMonthLengths = [MonthsPerYear]int{36, 37, 36, 37, 36, 37, 36, 37, 36, 37}

// Date is a Decimal Solar Calendar date. Day is bounded by the month length
// for that (year, leap rule) combination: 36 or 37, and 38 only in month 10
// of a leap year.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..10
	Day   int `json:"day"`   // 1..36|37|38
}

// String renders the canonical form, e.g. "2026-M05-20".
func (d Date) String() string {
	return fmt.Sprintf("%04d-M%02d-%02d", d.Year, d.Month, d.Day)
}

// Calendar maps civil (Gregorian) dates to and from DSC dates under one
// leap rule. Immutable after construction.
type Calendar struct {
	rule domain.LeapRule
	rate decimal.Decimal // meaningful iff rule == LeapAccumulator
}

// New validates and constructs a calendar. The accumulator rule requires a
// rate; every other rule forbids one.
func New(rule domain.LeapRule, rate *decimal.Decimal) (*Calendar, error) {
	if !rule.Valid() {
		return nil, fmt.Errorf("%w: unknown leap rule %q", domain.ErrInvalidConfig, string(rule))
	}
	if rule == domain.LeapAccumulator && rate == nil {
		return nil, fmt.Errorf("%w: leap rule %q requires accumulator_rate", domain.ErrInvalidConfig, domain.LeapAccumulator)
	}
	if rule != domain.LeapAccumulator && rate != nil {
		return nil, fmt.Errorf("%w: accumulator_rate only valid with leap rule %q", domain.ErrInvalidConfig, domain.LeapAccumulator)
	}
	c := &Calendar{rule: rule}
	if rate != nil {
		c.rate = *rate
	}
	return c, nil
}

// ForProfile builds the calendar bound to a profile's leap rule, so the
// calendar and the converter sharing that profile agree on leap placement.
func ForProfile(p domain.PlanetProfile) (*Calendar, error) {
	return New(p.LeapRule, p.AccumulatorRate)
}

// IsLeap reports whether year receives the extra day under the active rule.
func (c *Calendar) IsLeap(year int) bool {
	switch c.rule {
	case domain.LeapFixedGregorian:
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	case domain.LeapAccumulator:
		// Stateless accumulation: year y leaps iff the running total
		// floor(y*rate) ticked up at y. Multiplication of exact decimals
		// is exact, so no working-precision cap applies here at all.
		return leapsThrough(year, c.rate)-leapsThrough(year-1, c.rate) == 1
	default:
		return false
	}
}

func leapsThrough(year int, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(int64(year)).Mul(rate).Floor().IntPart()
}

// MonthLengths returns the 10 month lengths for a year.
func (c *Calendar) MonthLengths(year int) [MonthsPerYear]int {
	lengths := baseMonthLengths
	if c.IsLeap(year) {
		lengths[MonthsPerYear-1]++
	}
	return lengths
}

// FromGregorian maps a civil date to its DSC date by walking the month
// sequence over the civil day-of-year. Only the civil calendar day matters;
// any time-of-day or zone on t is ignored beyond what YearDay sees.
func (c *Calendar) FromGregorian(t time.Time) (Date, error) {
	year := t.Year()
	dayOfYear := t.YearDay()

	running := 0
	for i, length := range c.MonthLengths(year) {
		if dayOfYear <= running+length {
			return Date{Year: year, Month: i + 1, Day: dayOfYear - running}, nil
		}
		running += length
	}
	return Date{}, fmt.Errorf("%w: day %d of year %d", domain.ErrOutOfBounds, dayOfYear, year)
}

// ToGregorian maps a DSC date back to the civil date at UTC midnight.
// Round-trips exactly with FromGregorian for every valid civil date.
func (c *Calendar) ToGregorian(d Date) (time.Time, error) {
	if d.Month < 1 || d.Month > MonthsPerYear {
		return time.Time{}, fmt.Errorf("%w: month %d not in 1..%d", domain.ErrInvalidMonth, d.Month, MonthsPerYear)
	}
	lengths := c.MonthLengths(d.Year)
	monthLen := lengths[d.Month-1]
	if d.Day < 1 || d.Day > monthLen {
		return time.Time{}, fmt.Errorf("%w: day %d not in 1..%d for month %d of %d", domain.ErrInvalidDay, d.Day, monthLen, d.Month, d.Year)
	}

	dayOfYear := d.Day
	for _, length := range lengths[:d.Month-1] {
		dayOfYear += length
	}
	jan1 := time.Date(d.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, dayOfYear-1), nil
}
