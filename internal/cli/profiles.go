package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/domain"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured planetary profiles",
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	for _, p := range cfg.Profiles {
		marker := " "
		if p.Name == cfg.DefaultProfile {
			marker = "*"
		}
		rule := string(p.LeapRule)
		if p.LeapRule == domain.LeapAccumulator && p.AccumulatorRate != nil {
			rule = fmt.Sprintf("%s(%s)", p.LeapRule, p.AccumulatorRate)
		}
		fmt.Printf("%s %-10s day=%ss  year=%s AC  leap=%s\n",
			marker, p.Name, p.SecondsPerDay, p.YearInDays, rule)
	}
	return nil
}

var profilesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Dump one profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := cfg.Profile(args[0])
	if err != nil {
		return err
	}
	data, err := p.ToJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
