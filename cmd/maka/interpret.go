package main

import (
	"github.com/spf13/cobra"

	"github.com/scholartools/maka/query"
)

var (
	interpretComplete int
	interpretCount    int
	interpretOffset   int
	interpretTimeout  int
	interpretModel    string
)

var interpretCmd = &cobra.Command{
	Use:   "interpret <query>",
	Short: "Interpret a natural language query into query expressions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		querier, err := newQuerier()
		if err != nil {
			return err
		}

		q := query.NewInterpret(args[0])
		q.Complete = interpretComplete
		q.Count = interpretCount
		q.Offset = interpretOffset
		q.TimeoutMS = interpretTimeout
		q.Model = interpretModel

		result, err := querier.Post(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printEntities(result.Entities)
	},
}

func init() {
	interpretCmd.Flags().IntVar(&interpretComplete, "complete", 0, "Enable autocompletion suggestions (0 or 1)")
	interpretCmd.Flags().IntVar(&interpretCount, "count", query.MaxPageResults, "Maximum number of interpretations")
	interpretCmd.Flags().IntVar(&interpretOffset, "offset", 0, "Index of the first interpretation")
	interpretCmd.Flags().IntVar(&interpretTimeout, "timeout", query.DefaultInterpretTimeoutMS, "Interpretation timeout in milliseconds")
	interpretCmd.Flags().StringVar(&interpretModel, "model", query.DefaultModel, "Model name to query")
	rootCmd.AddCommand(interpretCmd)
}
