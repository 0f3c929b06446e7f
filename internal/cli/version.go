package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/kubev2v/paint-planner/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	out io.Writer
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print paint-planner version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.out = cmd.OutOrStdout()
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	_, err := fmt.Fprintf(o.out, "Paint Planner Version: %s\n", versionInfo.String())
	return err
}
