package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/app/calendar"
)

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(toDSCCmd)
	calendarCmd.AddCommand(fromDSCCmd)
	calendarCmd.AddCommand(monthsCmd)
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Decimal Solar Calendar mappings",
}

var toDSCCmd = &cobra.Command{
	Use:   "to-dsc DATE",
	Short: "Map a civil date (YYYY-MM-DD) to its DSC date",
	Args:  cobra.ExactArgs(1),
	RunE:  runToDSC,
}

func runToDSC(cmd *cobra.Command, args []string) error {
	civil, err := time.ParseInLocation("2006-01-02", args[0], time.UTC)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD", args[0])
	}
	cal, err := profileCalendar()
	if err != nil {
		return err
	}
	dsc, err := cal.FromGregorian(civil)
	if err != nil {
		return err
	}
	fmt.Printf("Gregorian %s -> DSC %s\n", args[0], dsc)
	return nil
}

var fromDSCCmd = &cobra.Command{
	Use:   "from-dsc YEAR MONTH DAY",
	Short: "Map a DSC date back to the civil calendar",
	Args:  cobra.ExactArgs(3),
	RunE:  runFromDSC,
}

func runFromDSC(cmd *cobra.Command, args []string) error {
	var parts [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not an integer", arg)
		}
		parts[i] = n
	}
	cal, err := profileCalendar()
	if err != nil {
		return err
	}
	dsc := calendar.Date{Year: parts[0], Month: parts[1], Day: parts[2]}
	civil, err := cal.ToGregorian(dsc)
	if err != nil {
		return err
	}
	fmt.Printf("DSC %s -> Gregorian %s\n", dsc, civil.Format("2006-01-02"))
	return nil
}

var monthsCmd = &cobra.Command{
	Use:   "months YEAR",
	Short: "Show the 10 month lengths for a year",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonths,
}

func runMonths(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not a year", args[0])
	}
	cal, err := profileCalendar()
	if err != nil {
		return err
	}

	lengths := cal.MonthLengths(year)
	total := 0
	for i, l := range lengths {
		fmt.Printf("  M%02d: %d days\n", i+1, l)
		total += l
	}
	leap := ""
	if cal.IsLeap(year) {
		leap = " (leap)"
	}
	fmt.Printf("  Year %d: %d days%s\n", year, total, leap)
	return nil
}

func profileCalendar() (*calendar.Calendar, error) {
	profile, err := activeProfile()
	if err != nil {
		return nil, err
	}
	return calendar.ForProfile(profile)
}
