package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/app/convert"
	"github.com/astrocycle/dectime/internal/domain"
)

var places int

func init() {
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(watchCmd)
	nowCmd.Flags().IntVar(&places, "places", convert.DefaultPlaces, "fixed decimal places for fraction and percent")
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the current decimal time",
	RunE:  runNow,
}

func runNow(cmd *cobra.Command, args []string) error {
	profile, err := activeProfile()
	if err != nil {
		return err
	}
	res, err := convertNow(profile, places)
	if err != nil {
		return err
	}

	fmt.Printf("Decimal Time (%s)\n", profile.Name)
	fmt.Printf("  AC:        %d\n", res.DayIndex)
	fmt.Printf("  Fraction:  %s (%s%%)\n", res.Display.FractionStr, res.Display.PercentStr)
	fmt.Printf("  Composite: %02d MC . %d kC . %d C\n",
		res.Display.Hundredths, res.Display.ThousandthsDigit, res.Display.UnitsDigit)
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live decimal clock, updating in place",
	Long: `Redraws the current decimal time roughly ten times per second.
One Cycle (1/10000 AC) lasts about 8.64 Earth seconds, so the display
comfortably keeps up. Interrupt with Ctrl-C.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	profile, err := activeProfile()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return nil
		case <-ticker.C:
			res, err := convertNow(profile, convert.DefaultPlaces)
			if err != nil {
				return err
			}
			fmt.Printf("\r\033[KDecimal Time: %s %%  |  %s (AC %d)",
				res.Display.PercentStr, res.Display.Composite(), res.DayIndex)
		}
	}
}

// convertNow converts the current wall clock. Nanoseconds scaled by 10^-9
// are already exact decimal, so the float hazard never arises here.
func convertNow(profile domain.PlanetProfile, places int) (convert.Result, error) {
	ts := decimal.New(time.Now().UnixNano(), -9)
	return convert.New(profile).DisplayFor(ts, places)
}
