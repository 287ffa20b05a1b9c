package commands

import (
	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

type FleetCmd struct {
	reporter parking.Reporter
	money    adapters.MoneyFormatter
	handler  ReportHandler
}

func NewFleetCmd(reporter parking.Reporter, money adapters.MoneyFormatter, handler ReportHandler) *cobra.Command {
	fc := &FleetCmd{reporter: reporter, money: money, handler: handler}
	return &cobra.Command{
		Use:   "fleet",
		Short: "List aircraft by parking time",
		Args:  cobra.NoArgs,
		RunE:  fc.run,
	}
}

func (fc *FleetCmd) run(cmd *cobra.Command, _ []string) error {
	fleet := fc.reporter.Fleet(cmd.Context())
	return fc.handler.Handle(adapters.MapFleetToReport(fleet, fc.money))
}
