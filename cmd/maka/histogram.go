package main

import (
	"github.com/spf13/cobra"

	"github.com/scholartools/maka/query"
)

var (
	histogramAttributes string
	histogramCount      int
	histogramOffset     int
	histogramModel      string
)

var histogramCmd = &cobra.Command{
	Use:   "histogram <expr>",
	Short: "Compute attribute value distributions for a query expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		querier, err := newQuerier()
		if err != nil {
			return err
		}

		q := query.NewCalcHistogram(args[0])
		q.Attributes = histogramAttributes
		q.Count = histogramCount
		q.Offset = histogramOffset
		q.Model = histogramModel

		result, err := querier.Post(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printEntities(result.Entities)
	},
}

func init() {
	histogramCmd.Flags().StringVar(&histogramAttributes, "attributes", "Y,F.FN", "Comma-separated attributes to aggregate")
	histogramCmd.Flags().IntVar(&histogramCount, "count", query.MaxPageResults, "Maximum number of histogram buckets")
	histogramCmd.Flags().IntVar(&histogramOffset, "offset", 0, "Index of the first bucket")
	histogramCmd.Flags().StringVar(&histogramModel, "model", query.DefaultModel, "Model name to query")
	rootCmd.AddCommand(histogramCmd)
}
