package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ConvertOptions turns any readable worksheet file (for instance an xlsx report) back into
// the YAML worksheet form.
type ConvertOptions struct {
	GlobalOptions

	Out string
	out io.Writer
}

func DefaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdConvert() *cobra.Command {
	o := DefaultConvertOptions()
	cmd := &cobra.Command{
		Use:   "convert [-f] FILE",
		Short: "Write a worksheet file (YAML, JSON or xlsx) as a YAML worksheet.",
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

func (o *ConvertOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Out, "out", o.Out, "Write the worksheet to this file instead of stdout")
}

func (o *ConvertOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *ConvertOptions) Run(ctx context.Context, args []string) error {
	w, err := o.Worksheet()
	if err != nil {
		return err
	}

	data, err := w.Marshal()
	if err != nil {
		return err
	}

	if o.Out == "" {
		_, err = o.out.Write(data)
		return err
	}

	if err := os.WriteFile(o.Out, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", o.Out)
	}
	_, err = fmt.Fprintf(o.out, "worksheet written to %s\n", o.Out)
	return err
}
