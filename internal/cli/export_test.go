package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/astrocycle/dectime/internal/app/calendar"
	"github.com/astrocycle/dectime/internal/domain"
)

func TestYearMappingCoversWholeYear(t *testing.T) {
	cal, err := calendar.New(domain.LeapFixedGregorian, nil)
	if err != nil {
		t.Fatalf("calendar.New: %v", err)
	}

	tests := []struct {
		year int
		days int
	}{
		{2024, 366},
		{2026, 365},
	}
	for _, tt := range tests {
		mappings, err := yearMapping(cal, tt.year)
		if err != nil {
			t.Fatalf("yearMapping(%d): %v", tt.year, err)
		}
		if len(mappings) != tt.days {
			t.Errorf("yearMapping(%d) = %d days, want %d", tt.year, len(mappings), tt.days)
		}
		first := mappings[0]
		if first.DSC != (calendar.Date{Year: tt.year, Month: 1, Day: 1}) {
			t.Errorf("year %d first day = %v", tt.year, first.DSC)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	cal, err := calendar.New(domain.LeapFixedGregorian, nil)
	if err != nil {
		t.Fatalf("calendar.New: %v", err)
	}
	mappings, err := yearMapping(cal, 2026)
	if err != nil {
		t.Fatalf("yearMapping: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dsc_mapping_2026.csv")
	if err := writeCSV(path, mappings); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(records) != 366 { // header + 365 days
		t.Fatalf("len(records) = %d, want 366", len(records))
	}
	if records[0][0] != "gregorian_date" {
		t.Errorf("header = %v", records[0])
	}
	last := records[len(records)-1]
	if last[0] != "2026-12-31" || last[4] != "2026-M10-37" {
		t.Errorf("last record = %v", last)
	}
}
