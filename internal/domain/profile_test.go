package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProfileValidation(t *testing.T) {
	rate := decimal.RequireFromString("0.25")

	tests := []struct {
		name    string
		spd     string
		rule    LeapRule
		rate    *decimal.Decimal
		wantErr bool
	}{
		{"valid gregorian", "86400", LeapFixedGregorian, nil, false},
		{"valid accumulator", "88775.244", LeapAccumulator, &rate, false},
		{"valid none", "100", LeapNone, nil, false},
		{"zero day length", "0", LeapFixedGregorian, nil, true},
		{"negative day length", "-86400", LeapFixedGregorian, nil, true},
		{"unknown rule", "86400", LeapRule("julian"), nil, true},
		{"accumulator without rate", "86400", LeapAccumulator, nil, true},
		{"rate without accumulator", "86400", LeapNone, &rate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfile("Test", decimal.RequireFromString(tt.spd),
				decimal.RequireFromString("365.25"), decimal.Zero, tt.rule, tt.rate)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("NewProfile err = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProfile returned unexpected error: %v", err)
			}
		})
	}
}

func TestProfileJSONRoundTrip(t *testing.T) {
	for _, p := range []PlanetProfile{EarthProfile(), MarsProfile()} {
		t.Run(p.Name, func(t *testing.T) {
			data, err := p.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			back, err := ProfileFromJSON(data)
			if err != nil {
				t.Fatalf("ProfileFromJSON: %v", err)
			}

			if back.Name != p.Name {
				t.Errorf("Name = %q, want %q", back.Name, p.Name)
			}
			if !back.SecondsPerDay.Equal(p.SecondsPerDay) {
				t.Errorf("SecondsPerDay = %s, want %s", back.SecondsPerDay, p.SecondsPerDay)
			}
			if !back.YearInDays.Equal(p.YearInDays) {
				t.Errorf("YearInDays = %s, want %s", back.YearInDays, p.YearInDays)
			}
			if !back.EpochOffsetSeconds.Equal(p.EpochOffsetSeconds) {
				t.Errorf("EpochOffsetSeconds = %s, want %s", back.EpochOffsetSeconds, p.EpochOffsetSeconds)
			}
			if back.LeapRule != p.LeapRule {
				t.Errorf("LeapRule = %q, want %q", back.LeapRule, p.LeapRule)
			}
			switch {
			case p.AccumulatorRate == nil && back.AccumulatorRate != nil:
				t.Errorf("AccumulatorRate = %s, want absent", back.AccumulatorRate)
			case p.AccumulatorRate != nil && back.AccumulatorRate == nil:
				t.Error("AccumulatorRate absent after round trip")
			case p.AccumulatorRate != nil && !back.AccumulatorRate.Equal(*p.AccumulatorRate):
				t.Errorf("AccumulatorRate = %s, want %s", back.AccumulatorRate, p.AccumulatorRate)
			}
		})
	}
}

// A profile serialized with a fractional day length must come back with the
// exact decimal digits it was saved with, not a float64 reading of them.
func TestProfileDecimalTextExact(t *testing.T) {
	data, err := MarsProfile().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := ProfileFromJSON(data)
	if err != nil {
		t.Fatalf("ProfileFromJSON: %v", err)
	}
	if got := back.SecondsPerDay.String(); got != "88775.244" {
		t.Errorf("SecondsPerDay text = %q, want %q", got, "88775.244")
	}
	if got := back.AccumulatorRate.String(); got != "0.5921" {
		t.Errorf("AccumulatorRate text = %q, want %q", got, "0.5921")
	}
}

func TestProfileFromJSONRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{`},
		{"zero day length", `{"name":"X","seconds_per_day":"0","year_in_days":"1","epoch_offset_seconds":"0","leap_rule":"none"}`},
		{"unknown rule", `{"name":"X","seconds_per_day":"1","year_in_days":"1","epoch_offset_seconds":"0","leap_rule":"julian"}`},
		{"missing rate", `{"name":"X","seconds_per_day":"1","year_in_days":"1","epoch_offset_seconds":"0","leap_rule":"accumulator"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ProfileFromJSON([]byte(tt.in)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ProfileFromJSON err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
