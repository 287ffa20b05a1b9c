package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/parking-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/spf13/cobra"
)

const (
	OutputTable = "table"
	OutputText  = "text"
)

// CLI represents the command-line interface
type CLI struct {
	reporter parking.Reporter
	money    adapters.MoneyFormatter
	table    *export.Reporter
	text     *Reporter
	output   string
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Reporter parking.Reporter
	Money    adapters.MoneyFormatter
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: opts.Reporter,
		money:    opts.Money,
		table:    export.NewReporter(opts.Output, opts.Money),
		text:     NewReporter(opts.Output, opts.Money),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// RootCmd exposes the command tree so callers can attach persistent flags.
func (cli *CLI) RootCmd() *cobra.Command {
	return cli.rootCmd
}

// Handle renders a report in the output format picked on the command line.
func (cli *CLI) Handle(report *domain.Report) error {
	switch cli.output {
	case OutputTable, "":
		return cli.table.Handle(report)
	case OutputText:
		return cli.text.Handle(report)
	default:
		return fmt.Errorf("unsupported output format %q (must be %s or %s)", cli.output, OutputTable, OutputText)
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "parking-atlas",
		Short:         "Airline parking analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.output, "output", "o", OutputTable, "Report format (table or text)")

	cmd.AddCommand(commands.NewDashboardCmd(cli.reporter, cli.money, cli))
	cmd.AddCommand(commands.NewFleetCmd(cli.reporter, cli.money, cli))
	cmd.AddCommand(commands.NewAnalyticsCmd(cli.reporter, cli.money, cli))
	cmd.AddCommand(commands.NewGlobalCmd(cli.reporter, cli.money, cli))
	cmd.AddCommand(commands.NewLookupCmd(cli.reporter))

	return cmd
}
