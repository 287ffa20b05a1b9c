package commands

import (
	"fmt"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

type AnalyticsCmd struct {
	aircraft  string
	airport   string
	continent string
	reporter  parking.Reporter
	money     adapters.MoneyFormatter
	handler   ReportHandler
}

func NewAnalyticsCmd(reporter parking.Reporter, money adapters.MoneyFormatter, handler ReportHandler) *cobra.Command {
	ac := &AnalyticsCmd{reporter: reporter, money: money, handler: handler}
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Analyze parking records by aircraft, airport and continent",
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.aircraft, "aircraft", domain.All, "Aircraft ID to analyze")
	cmd.Flags().StringVar(&ac.airport, "airport", domain.All, "Airport ID to analyze")
	cmd.Flags().StringVar(&ac.continent, "continent", domain.All, "Continent to analyze (e.g., Europe)")

	return cmd
}

func (ac *AnalyticsCmd) run(cmd *cobra.Command, _ []string) error {
	analytics, err := ac.reporter.Analytics(cmd.Context(), domain.Filter{
		AircraftID: ac.aircraft,
		AirportID:  ac.airport,
		Continent:  ac.continent,
	})
	if err != nil {
		return fmt.Errorf("failed to analyze parking records: %w", err)
	}

	return ac.handler.Handle(adapters.MapAnalyticsToReport(analytics, ac.money))
}
