package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"personalityPairing/pkg/chart"
	"personalityPairing/pkg/logging"
	"personalityPairing/pkg/profile"
)

var (
	chartType string
	chartOut  string
)

var chartCmd = &cobra.Command{
	Use:       "chart line|map",
	Short:     "Writes a chart as plotly figure JSON",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"line", "map"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithTrackingId(cmd.Context())

		variety := ""
		if chartType != "" {
			p, ok := profile.Lookup(chartType)
			if !ok {
				return errors.Errorf("unknown personality type %q", chartType)
			}
			variety = p.Wine
		}

		s, err := buildServices(ctx)
		if err != nil {
			return err
		}

		var f *chart.Figure
		if args[0] == "line" {
			f, err = s.charts.LineFigure(ctx)
		} else {
			f, err = s.charts.MapFigure(ctx, variety)
		}
		if err != nil {
			return err
		}

		raw, err := f.JSON()
		if err != nil {
			return errors.Wrap(err, "failed to encode figure")
		}

		if chartOut == "" {
			_, err = cmd.OutOrStdout().Write(append(raw, '\n'))
			return err
		}

		return errors.Wrapf(os.WriteFile(chartOut, raw, 0o644), "failed to write %q", chartOut)
	},
}

func initChartCmd() {
	chartCmd.Flags().StringVarP(&chartType, "type", "t", "", "restrict the map to the wine variety of a personality type")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(chartCmd)
}
