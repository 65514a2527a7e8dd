package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/app/convert"
)

var convertPlaces int

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().IntVar(&convertPlaces, "places", convert.DefaultPlaces, "fixed decimal places for fraction and percent")
}

var convertCmd = &cobra.Command{
	Use:   "convert TIMESTAMP",
	Short: "Convert a Unix timestamp to decimal time",
	Long: `Convert a Unix timestamp (SI seconds, decimal point allowed) to
decimal time under the active profile. The argument is parsed as decimal
text, so every digit you type is the digit that gets converted.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	ts, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("timestamp %q is not a decimal number", args[0])
	}

	profile, err := activeProfile()
	if err != nil {
		return err
	}
	res, err := convert.New(profile).DisplayFor(ts, convertPlaces)
	if err != nil {
		return err
	}

	fmt.Printf("Profile:   %s\n", profile.Name)
	fmt.Printf("AC:        %d\n", res.DayIndex)
	fmt.Printf("Fraction:  %s (%s%%)\n", res.Display.FractionStr, res.Display.PercentStr)
	fmt.Printf("Composite: %s\n", res.Display.Composite())
	return nil
}
