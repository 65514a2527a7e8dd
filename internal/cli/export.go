package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/app/calendar"
	"github.com/astrocycle/dectime/internal/infra/sqlite"
)

var (
	exportOut  string
	exportToDB bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportRunsCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "CSV output path (default dsc_mapping_YEAR.csv)")
	exportCmd.Flags().BoolVar(&exportToDB, "db", false, "record the mapping in the export store instead of a CSV file")
}

var exportCmd = &cobra.Command{
	Use:   "export YEAR",
	Short: "Export a year's Gregorian-to-DSC mapping",
	Long: `Walk every civil day of YEAR, map it onto the Decimal Solar
Calendar, and write the result as CSV or into the SQLite export store.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not a year", args[0])
	}

	profile, err := activeProfile()
	if err != nil {
		return err
	}
	cal, err := calendar.ForProfile(profile)
	if err != nil {
		return err
	}

	mappings, err := yearMapping(cal, year)
	if err != nil {
		return err
	}

	if exportToDB {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := cfg.DBPath()
		if err != nil {
			return err
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		runID, err := db.RecordRun(profile.Name, year, mappings)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %d days for %d as run %s in %s\n", len(mappings), year, runID, path)
		return nil
	}

	out := exportOut
	if out == "" {
		out = fmt.Sprintf("dsc_mapping_%d.csv", year)
	}
	if err := writeCSV(out, mappings); err != nil {
		return err
	}
	fmt.Printf("Wrote %d days for %d to %s\n", len(mappings), year, out)
	return nil
}

// yearMapping maps every civil day of a year.
func yearMapping(cal *calendar.Calendar, year int) ([]sqlite.Mapping, error) {
	var out []sqlite.Mapping
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		dsc, err := cal.FromGregorian(d)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", d.Format("2006-01-02"), err)
		}
		out = append(out, sqlite.Mapping{Gregorian: d, DSC: dsc})
	}
	return out, nil
}

func writeCSV(path string, mappings []sqlite.Mapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"gregorian_date", "dsc_year", "dsc_month", "dsc_day", "dsc_formatted"}); err != nil {
		return err
	}
	for _, m := range mappings {
		record := []string{
			m.Gregorian.Format("2006-01-02"),
			strconv.Itoa(m.DSC.Year),
			strconv.Itoa(m.DSC.Month),
			strconv.Itoa(m.DSC.Day),
			m.DSC.String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

var exportRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List mappings recorded in the export store",
	Args:  cobra.NoArgs,
	RunE:  runExportRuns,
}

func runExportRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.DBPath()
	if err != nil {
		return err
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No export runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %-8s %d  %3d days  %s\n",
			r.ID, r.Profile, r.Year, r.DayCount, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
