package main

import (
	"github.com/spf13/cobra"

	"github.com/scholartools/maka/query"
)

var (
	evaluateAttributes string
	evaluateCount      int
	evaluateOffset     int
	evaluateModel      string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <expr>",
	Short: "Evaluate a query expression and return matching papers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		querier, err := newQuerier()
		if err != nil {
			return err
		}

		q := query.NewEvaluate(args[0])
		q.Attributes = evaluateAttributes
		q.Count = evaluateCount
		q.Offset = evaluateOffset
		q.Model = evaluateModel

		result, err := querier.Post(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printEntities(result.Entities)
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateAttributes, "attributes", "Id,Ti,Y,CC,AA.AuN,AA.AuId", "Comma-separated wire codes to request")
	evaluateCmd.Flags().IntVar(&evaluateCount, "count", query.MaxPageResults, "Maximum number of entities")
	evaluateCmd.Flags().IntVar(&evaluateOffset, "offset", 0, "Index of the first entity")
	evaluateCmd.Flags().StringVar(&evaluateModel, "model", query.DefaultModel, "Model name to query")
	rootCmd.AddCommand(evaluateCmd)
}
