package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	api "github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/service/report/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type EstimateOptions struct {
	GlobalOptions

	Output string
	out    io.Writer
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate [-f] FILE",
		Short: "Estimate paint, cost and labor for a worksheet file.",
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *EstimateOptions) Run(ctx context.Context, args []string) error {
	w, err := o.Worksheet()
	if err != nil {
		return err
	}

	result, err := service.NewEstimationService().Calculate(ctx, service.EstimateInput{
		Walls:   w.Walls.Items(),
		Doors:   w.Doors.Items(),
		Windows: w.Windows.Items(),
		Inputs:  w.Inputs,
	})
	if err != nil {
		return fmt.Errorf("estimating %s: %w", o.File, err)
	}

	estimate := mappers.EstimateToApi(result)
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(estimate)
		if err != nil {
			return fmt.Errorf("marshalling estimate: %w", err)
		}
		_, err = fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return err
	case yamlFormat:
		marshalled, err := yaml.Marshal(estimate)
		if err != nil {
			return fmt.Errorf("marshalling estimate: %w", err)
		}
		_, err = fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return err
	default:
		return printEstimateTable(o.out, w.Name, estimate)
	}
}

func printEstimateTable(out io.Writer, name string, estimate api.Estimate) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	res := estimate.Result

	fmt.Fprintf(w, "WORKSHEET\t%s\n", name)
	fmt.Fprintf(w, "PAINTABLE AREA\t%s\n", types.FormatAmount(res.PaintableArea))
	fmt.Fprintf(w, "PRIMER\t%s\t%d cans\n", types.FormatVolume(res.PrimerVolumeNeeded), res.PrimerCansNeeded)
	fmt.Fprintf(w, "PAINT\t%s\t%d cans\n", types.FormatVolume(res.PaintVolumeNeeded), res.PaintCansNeeded)
	fmt.Fprintf(w, "TOTAL COST\t%s\n", types.FormatAmount(res.TotalCost))
	fmt.Fprintf(w, "TOTAL HOURS\t%s\n", types.FormatAmount(res.TotalHoursNeeded))

	return w.Flush()
}
