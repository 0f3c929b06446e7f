package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

type ReportOptions struct {
	GlobalOptions

	Format string
	Out    string
	out    io.Writer

	reports *service.ReportService
}

func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        string(service.ReportFormatText),
		reports:       service.NewReportService(),
	}
}

func NewCmdReport() *cobra.Command {
	o := DefaultReportOptions()
	cmd := &cobra.Command{
		Use:   "report [-f] FILE",
		Short: "Render an estimate report for a worksheet file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Format, "format", o.Format, fmt.Sprintf("Report format. One of: (%s).", strings.Join(o.reports.Formats(), ", ")))
	fs.StringVar(&o.Out, "out", o.Out, "Write the report to this file instead of stdout")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.Format = strings.ToLower(o.Format)
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.ContainsString(o.reports.Formats(), o.Format) {
		return fmt.Errorf("report format must be one of %s", strings.Join(o.reports.Formats(), ", "))
	}
	if o.Format == string(service.ReportFormatXLSX) && o.Out == "" {
		return fmt.Errorf("--out is required for the xlsx format")
	}

	return nil
}

func (o *ReportOptions) Run(ctx context.Context, args []string) error {
	w, err := o.Worksheet()
	if err != nil {
		return err
	}

	params, err := w.Parameters()
	if err != nil {
		return fmt.Errorf("estimating %s: %w", o.File, err)
	}

	estimate, err := service.NewEstimationService().Calculate(ctx, service.EstimateInput{
		Walls:   w.Walls.Items(),
		Doors:   w.Doors.Items(),
		Windows: w.Windows.Items(),
		Inputs:  w.Inputs,
	})
	if err != nil {
		return fmt.Errorf("estimating %s: %w", o.File, err)
	}

	report, err := o.reports.GenerateReport(w, params, estimate, o.Format)
	if err != nil {
		return err
	}

	if o.Out == "" {
		_, err = o.out.Write(report.Content)
		return err
	}

	if err := os.WriteFile(o.Out, report.Content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", o.Out)
	}
	_, err = fmt.Fprintf(o.out, "report written to %s\n", o.Out)
	return err
}
