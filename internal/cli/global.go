package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kubev2v/paint-planner/internal/spreadsheet"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

var (
	legalWorksheetExtensions = []string{".yaml", ".yml", ".json", ".xlsx"}
)

type GlobalOptions struct {
	File string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", o.File, "Path to a worksheet file (YAML, JSON or an xlsx workbook)")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	if o.File == "" && len(args) == 1 {
		o.File = args[0]
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.File == "" {
		return fmt.Errorf("a worksheet file is required")
	}
	ext := strings.ToLower(filepath.Ext(o.File))
	if !funk.ContainsString(legalWorksheetExtensions, ext) {
		return fmt.Errorf("worksheet file must have one of the extensions %s", strings.Join(legalWorksheetExtensions, ", "))
	}
	return nil
}

// Worksheet reads and parses the worksheet file.
func (o *GlobalOptions) Worksheet() (*worksheet.Worksheet, error) {
	data, err := os.ReadFile(o.File)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", o.File)
	}
	w, err := parseWorksheet(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", o.File)
	}
	if w.Name == "" {
		w.Name = strings.TrimSuffix(filepath.Base(o.File), filepath.Ext(o.File))
	}
	return w, nil
}

func parseWorksheet(data []byte) (*worksheet.Worksheet, error) {
	if !spreadsheet.IsExcelFile(data) {
		return worksheet.Parse(data)
	}
	doc, err := spreadsheet.ParseWorkbook(data)
	if err != nil {
		return nil, err
	}
	return doc.Worksheet()
}
