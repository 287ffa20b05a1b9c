package commands

import (
	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

type DashboardCmd struct {
	reporter parking.Reporter
	money    adapters.MoneyFormatter
	handler  ReportHandler
}

func NewDashboardCmd(reporter parking.Reporter, money adapters.MoneyFormatter, handler ReportHandler) *cobra.Command {
	dc := &DashboardCmd{reporter: reporter, money: money, handler: handler}
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show fleet-wide parking totals",
		Args:  cobra.NoArgs,
		RunE:  dc.run,
	}
}

func (dc *DashboardCmd) run(cmd *cobra.Command, _ []string) error {
	dashboard := dc.reporter.Dashboard(cmd.Context())
	return dc.handler.Handle(adapters.MapDashboardToReport(dashboard, dc.money))
}
