package commands

import (
	"fmt"

	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

func NewLookupCmd(reporter parking.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up aircraft, airports and continents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "aircraft <id>",
		Short: "Show a single aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := reporter.LookupAircraft(args[0])
			if !ok {
				return fmt.Errorf("aircraft %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n  Model: %s\n  Registration: %s\n  Capacity: %d\n  Year: %d\n",
				a.ID, a.Model, a.RegistrationNumber, a.Capacity, a.YearManufactured)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "airport <id>",
		Short: "Show a single airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := reporter.LookupAirport(args[0])
			if !ok {
				return fmt.Errorf("airport %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n  %s, %s\n  Continent: %s\n  Coordinates: %.4f, %.4f\n",
				a.Name, a.Code, a.City, a.Country, parking.ClassifyContinent(a.Country),
				a.Coordinates.Latitude, a.Coordinates.Longitude)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "continent <country>",
		Short: "Classify a country into its continent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], parking.ClassifyContinent(args[0]))
			return nil
		},
	})

	return cmd
}
