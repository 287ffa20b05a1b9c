package commands

import (
	"fmt"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

type GlobalCmd struct {
	continent string
	reporter  parking.Reporter
	money     adapters.MoneyFormatter
	handler   ReportHandler
}

func NewGlobalCmd(reporter parking.Reporter, money adapters.MoneyFormatter, handler ReportHandler) *cobra.Command {
	gc := &GlobalCmd{reporter: reporter, money: money, handler: handler}
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Show airport parking across continents",
		Args:  cobra.NoArgs,
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.continent, "continent", domain.All, "Restrict to one continent (e.g., Asia)")

	return cmd
}

func (gc *GlobalCmd) run(cmd *cobra.Command, _ []string) error {
	global, err := gc.reporter.Global(cmd.Context(), gc.continent)
	if err != nil {
		return fmt.Errorf("failed to build global overview: %w", err)
	}

	return gc.handler.Handle(adapters.MapGlobalToReport(global, gc.money))
}
