package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/desde-go/pkg/desde"
	"github.com/ukaji3/desde-go/pkg/desde/models"
	"github.com/ukaji3/desde-go/pkg/desde/output"
)

// Report formats.
const (
	formatText   = "text"
	formatJSON   = "json"
	formatCSV    = "csv"
	formatXLSX   = "xlsx"
	formatPDF    = "pdf"
	formatSVG    = "svg"
	formatPNG    = "png"
	formatPlotly = "plotly"
)

var reportFormats = []string{formatText, formatJSON, formatCSV, formatXLSX, formatPDF, formatSVG, formatPNG, formatPlotly}

func newReportCmd() *cobra.Command {
	var (
		district   string
		typology   string
		format     string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the starting prices of one selection",
		Long: `report renders the starting price table or chart for one district and
typology. Without --comuna or --tipologia the first option of each list is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !isReportFormat(format) {
				return fmt.Errorf("invalid format: %s (must be one of %s)", format, strings.Join(reportFormats, ", "))
			}
			if (format == formatXLSX || format == formatPDF || format == formatPNG) && outputPath == "" {
				return fmt.Errorf("format %s is binary and requires --output", format)
			}

			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts := desdeOptions(cfg)
			ds, err := desde.Load(cfg.Data.Path, opts)
			if err != nil {
				return fmt.Errorf("failed to load workbook: %w", err)
			}

			sel := desde.DefaultSelection(ds)
			if cmd.Flags().Changed("comuna") {
				sel.District = district
			}
			if cmd.Flags().Changed("tipologia") {
				sel.Typology = typology
			}

			view := desde.Render(ds, sel, opts)
			logger.Debug("rendered",
				zap.String("comuna", sel.District),
				zap.String("tipologia", sel.Typology),
				zap.Int("matches", view.Matches),
				zap.Int("projects", len(view.StartingPrices)))

			var buf bytes.Buffer
			if err := writeReport(&buf, view, format, pretty); err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&district, "comuna", "", "District to report")
	cmd.Flags().StringVar(&typology, "tipologia", "", "Typology to report")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: "+strings.Join(reportFormats, ", "))
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func isReportFormat(format string) bool {
	for _, f := range reportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// writeReport serializes view to w in the given format. Chart formats write
// the placeholder text when nothing matched.
func writeReport(w io.Writer, view *models.View, format string, pretty bool) error {
	switch format {
	case formatText:
		_, err := fmt.Fprintf(w, "%s · %s · %s\n%s\n", view.BookName, view.Selection.District, view.Selection.Typology, output.TableToText(view.Table))
		return err
	case formatJSON:
		data, err := output.ToJSON(view, pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case formatCSV:
		return output.TableToCSV(w, view.Table, false)
	case formatXLSX:
		return output.TableToXLSX(w, view.Table, output.DefaultSheetName)
	case formatPDF:
		data, err := output.TableToPDF(view.Table, "Valores 'Desde' por Proyecto",
			fmt.Sprintf("Comuna: %s · Tipología: %s", view.Selection.District, view.Selection.Typology))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if view.Chart == nil {
		_, err := fmt.Fprintln(w, view.Placeholder)
		return err
	}
	switch format {
	case formatSVG:
		return output.ChartToSVG(w, view.Chart)
	case formatPNG:
		return output.ChartToPNG(w, view.Chart)
	case formatPlotly:
		data, err := output.ToPlotlyJSON(view.Chart, pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	return fmt.Errorf("invalid format: %s", format)
}
