package main

import (
	"os"

	"github.com/kubev2v/paint-planner/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewPaintPlannerCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPaintPlannerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paint-planner [flags] [options]",
		Short: "paint-planner estimates paint, cost and labor for a worksheet.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdEstimate())
	cmd.AddCommand(cli.NewCmdReport())
	cmd.AddCommand(cli.NewCmdConvert())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
