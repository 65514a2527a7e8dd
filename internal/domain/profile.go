// Package domain contains pure decimal-time types with ZERO infrastructure
// imports. This is the innermost ring: profiles are immutable values and
// every conversion call receives its profile explicitly; there is no shared
// mutable state and no hidden global default.
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ─── Leap Rules ─────────────────────────────────────────────────────────────

// LeapRule selects the policy deciding which years receive the extra day in
// month 10 of the Decimal Solar Calendar.
type LeapRule string

const (
	// LeapFixedGregorian reuses the civil leap-year rule so the decimal
	// calendar tracks Earth's tropical year.
	LeapFixedGregorian LeapRule = "gregorian"

	// LeapAccumulator distributes leap years evenly by stateless fractional
	// accumulation at a profile-supplied rate.
	LeapAccumulator LeapRule = "accumulator"

	// LeapNone never inserts a leap day.
	LeapNone LeapRule = "none"
)

// Valid reports whether r is a known leap rule.
func (r LeapRule) Valid() bool {
	switch r {
	case LeapFixedGregorian, LeapAccumulator, LeapNone:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler so leap rules serialize as
// their tag in both JSON and TOML.
func (r LeapRule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown leap rule %q", ErrInvalidConfig, string(r))
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with validation, so a
// bad tag fails at decode time rather than at first use.
func (r *LeapRule) UnmarshalText(text []byte) error {
	rule := LeapRule(text)
	if !rule.Valid() {
		return fmt.Errorf("%w: unknown leap rule %q", ErrInvalidConfig, string(text))
	}
	*r = rule
	return nil
}

// ─── Planetary Profile ──────────────────────────────────────────────────────

// PlanetProfile describes one body's time physics: the length of its day
// (one Astrocycle) in SI seconds, its orbital year, the Unix timestamp of
// its Time Zero, and how leap years are placed.
//
// All decimal-valued fields are exact decimals. They serialize as decimal
// text, never as binary floating point, so a profile reloaded from disk is
// bit-for-bit the profile that was saved.
type PlanetProfile struct {
	Name               string           `json:"name" toml:"name"`
	SecondsPerDay      decimal.Decimal  `json:"seconds_per_day" toml:"seconds_per_day"`
	YearInDays         decimal.Decimal  `json:"year_in_days" toml:"year_in_days"`
	EpochOffsetSeconds decimal.Decimal  `json:"epoch_offset_seconds" toml:"epoch_offset_seconds"`
	LeapRule           LeapRule         `json:"leap_rule" toml:"leap_rule"`
	AccumulatorRate    *decimal.Decimal `json:"accumulator_rate,omitempty" toml:"accumulator_rate,omitempty"`
}

// NewProfile validates and constructs an immutable profile.
//
// Rejected with ErrInvalidConfig: non-positive seconds per day, an unknown
// leap rule, a missing rate under the accumulator rule, and a rate supplied
// under any other rule.
func NewProfile(name string, secondsPerDay, yearInDays, epochOffset decimal.Decimal, rule LeapRule, rate *decimal.Decimal) (PlanetProfile, error) {
	if secondsPerDay.Sign() <= 0 {
		return PlanetProfile{}, fmt.Errorf("%w: seconds_per_day must be positive, got %s", ErrInvalidConfig, secondsPerDay)
	}
	if !rule.Valid() {
		return PlanetProfile{}, fmt.Errorf("%w: unknown leap rule %q", ErrInvalidConfig, string(rule))
	}
	if rule == LeapAccumulator && rate == nil {
		return PlanetProfile{}, fmt.Errorf("%w: leap rule %q requires accumulator_rate", ErrInvalidConfig, LeapAccumulator)
	}
	if rule != LeapAccumulator && rate != nil {
		return PlanetProfile{}, fmt.Errorf("%w: accumulator_rate only valid with leap rule %q", ErrInvalidConfig, LeapAccumulator)
	}
	p := PlanetProfile{
		Name:               name,
		SecondsPerDay:      secondsPerDay,
		YearInDays:         yearInDays,
		EpochOffsetSeconds: epochOffset,
		LeapRule:           rule,
	}
	if rate != nil {
		r := *rate
		p.AccumulatorRate = &r
	}
	return p, nil
}

// Validate re-checks the construction invariants. Useful after decoding a
// profile from JSON or TOML, where NewProfile was bypassed.
func (p PlanetProfile) Validate() error {
	_, err := NewProfile(p.Name, p.SecondsPerDay, p.YearInDays, p.EpochOffsetSeconds, p.LeapRule, p.AccumulatorRate)
	return err
}

// ToJSON round-trips every field exactly; decimals render as quoted
// decimal text.
func (p PlanetProfile) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// ProfileFromJSON decodes and validates a serialized profile.
func ProfileFromJSON(data []byte) (PlanetProfile, error) {
	var p PlanetProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return PlanetProfile{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return PlanetProfile{}, err
	}
	return p, nil
}

// ─── Stock Profiles ─────────────────────────────────────────────────────────

// EarthProfile returns the Earth standard: 1 AC = 86,400 SI seconds, epoch
// at the Unix epoch, civil leap-year rule. A fresh value is constructed per
// call; callers own their copy.
func EarthProfile() PlanetProfile {
	return PlanetProfile{
		Name:               "Earth",
		SecondsPerDay:      decimal.NewFromInt(86400),
		YearInDays:         decimal.RequireFromString("365.2422"),
		EpochOffsetSeconds: decimal.Zero,
		LeapRule:           LeapFixedGregorian,
	}
}

// MarsProfile returns a Mars sol profile using the accumulator leap rule
// with the fractional part of the Martian year as its rate.
func MarsProfile() PlanetProfile {
	rate := decimal.RequireFromString("0.5921")
	return PlanetProfile{
		Name:               "Mars",
		SecondsPerDay:      decimal.RequireFromString("88775.244"),
		YearInDays:         decimal.RequireFromString("668.5921"),
		EpochOffsetSeconds: decimal.Zero,
		LeapRule:           LeapAccumulator,
		AccumulatorRate:    &rate,
	}
}
