package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/astrocycle/dectime/internal/domain"
)

func gregorianCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := New(domain.LeapFixedGregorian, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cal
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorianLiterals(t *testing.T) {
	tests := []struct {
		in   time.Time
		want Date
	}{
		// Day 60 of 2026; month 1 holds 36, so 24 days into month 2.
		{civil(2026, time.March, 1), Date{2026, 2, 24}},
		// Day 166 of 2026; months 1..4 hold 36+37+36+37 = 146, leaving
		// day 20 of month 5. (Not 19: the walk is 1-based throughout.)
		{civil(2026, time.June, 15), Date{2026, 5, 20}},
		// Day 365, the last day of the 37-day month 10.
		{civil(2026, time.December, 31), Date{2026, 10, 37}},
		// Leap year: day 366 lands on the extended 38th day of month 10.
		{civil(2024, time.December, 31), Date{2024, 10, 38}},
		{civil(2024, time.January, 1), Date{2024, 1, 1}},
	}

	cal := gregorianCalendar(t)
	for _, tt := range tests {
		t.Run(tt.in.Format("2006-01-02"), func(t *testing.T) {
			got, err := cal.FromGregorian(tt.in)
			if err != nil {
				t.Fatalf("FromGregorian: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromGregorian = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthLengths(t *testing.T) {
	cal := gregorianCalendar(t)

	lengths := cal.MonthLengths(2026)
	if lengths[9] != 37 {
		t.Errorf("2026 month 10 = %d days, want 37", lengths[9])
	}
	lengths = cal.MonthLengths(2024)
	if lengths[9] != 38 {
		t.Errorf("2024 month 10 = %d days, want 38", lengths[9])
	}

	for _, year := range []int{2023, 2024, 2026, 2100, 2400} {
		sum := 0
		for _, l := range cal.MonthLengths(year) {
			sum += l
		}
		want := 365
		if cal.IsLeap(year) {
			want = 366
		}
		if sum != want {
			t.Errorf("year %d: lengths sum to %d, want %d", year, sum, want)
		}
	}

	// Century rule carried over from the civil calendar.
	if cal.IsLeap(2100) {
		t.Error("2100 should not be leap")
	}
	if !cal.IsLeap(2400) {
		t.Error("2400 should be leap")
	}
}

func TestRoundTripMultiYear(t *testing.T) {
	cal := gregorianCalendar(t)

	// Every civil day from 2023 through 2026, covering a leap year.
	for d := civil(2023, time.January, 1); d.Year() <= 2026; d = d.AddDate(0, 0, 1) {
		dsc, err := cal.FromGregorian(d)
		if err != nil {
			t.Fatalf("FromGregorian(%v): %v", d, err)
		}
		back, err := cal.ToGregorian(dsc)
		if err != nil {
			t.Fatalf("ToGregorian(%v): %v", dsc, err)
		}
		if !back.Equal(d) {
			t.Fatalf("round trip %v -> %v -> %v", d.Format("2006-01-02"), dsc, back.Format("2006-01-02"))
		}
	}
}

func TestAccumulatorLeapDeterministic(t *testing.T) {
	rate := decimal.RequireFromString("0.25")
	cal, err := New(domain.LeapAccumulator, &rate)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Query out of order first: the rule is a pure function of the year,
	// so no cross-call accumulator state can skew it.
	if !cal.IsLeap(8) {
		t.Error("year 8 should be leap")
	}
	for year := 1; year <= 16; year++ {
		want := year%4 == 0
		if got := cal.IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestNoneRuleNeverLeaps(t *testing.T) {
	cal, err := New(domain.LeapNone, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, year := range []int{4, 2000, 2024, 2400} {
		if cal.IsLeap(year) {
			t.Errorf("IsLeap(%d) = true under none rule", year)
		}
	}
}

func TestNewValidation(t *testing.T) {
	rate := decimal.RequireFromString("0.5")

	if _, err := New(domain.LeapAccumulator, nil); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("accumulator without rate: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(domain.LeapNone, &rate); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("rate without accumulator: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(domain.LeapRule("lunar"), nil); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("unknown rule: err = %v, want ErrInvalidConfig", err)
	}
}

func TestToGregorianValidation(t *testing.T) {
	cal := gregorianCalendar(t)

	tests := []struct {
		name string
		date Date
		want error
	}{
		{"month zero", Date{2026, 0, 1}, domain.ErrInvalidMonth},
		{"month eleven", Date{2026, 11, 1}, domain.ErrInvalidMonth},
		{"day zero", Date{2026, 1, 0}, domain.ErrInvalidDay},
		{"day beyond 36-day month", Date{2026, 1, 37}, domain.ErrInvalidDay},
		{"day 38 in non-leap year", Date{2026, 10, 38}, domain.ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := cal.ToGregorian(tt.date); !errors.Is(err, tt.want) {
				t.Errorf("ToGregorian(%v) err = %v, want %v", tt.date, err, tt.want)
			}
		})
	}

	// Day 38 of month 10 is valid in a leap year.
	got, err := cal.ToGregorian(Date{2024, 10, 38})
	if err != nil {
		t.Fatalf("ToGregorian leap day: %v", err)
	}
	if want := civil(2024, time.December, 31); !got.Equal(want) {
		t.Errorf("ToGregorian = %v, want %v", got, want)
	}
}

func TestForProfile(t *testing.T) {
	cal, err := ForProfile(domain.MarsProfile())
	if err != nil {
		t.Fatalf("ForProfile: %v", err)
	}
	// rate 0.5921: floor(1*r)=0, floor(2*r)=1, so year 2 leaps.
	if cal.IsLeap(1) {
		t.Error("year 1 should not be leap at rate 0.5921")
	}
	if !cal.IsLeap(2) {
		t.Error("year 2 should be leap at rate 0.5921")
	}
}

func TestDateString(t *testing.T) {
	if got := (Date{2026, 5, 20}).String(); got != "2026-M05-20" {
		t.Errorf("String = %q, want %q", got, "2026-M05-20")
	}
}
