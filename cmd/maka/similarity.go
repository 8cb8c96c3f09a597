package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholartools/maka/query"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <s1> <s2>",
	Short: "Score the semantic similarity of two strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		querier, err := newQuerier()
		if err != nil {
			return err
		}

		result, err := querier.Post(cmd.Context(), query.NewSimilarity(args[0], args[1]))
		if err != nil {
			return err
		}
		fmt.Println(result.Similarity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(similarityCmd)
}
