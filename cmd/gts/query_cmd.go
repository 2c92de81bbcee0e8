package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/query"
)

var (
	querySourcesFlag string
	queryLimitFlag   int
)

var queryCmd = &cobra.Command{
	Use:   "query <expression>",
	Short: `Evaluate a pattern[filter]@attr expression against the store`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := query.Parse(args[0])
		if err != nil {
			return err
		}
		st, _, err := openStore(querySourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		results, err := q.Evaluate(st, queryLimitFlag)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.HasID {
				fmt.Println(r.ID.Render())
			} else {
				fmt.Printf("%v\n", r.Value)
			}
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&querySourcesFlag, "sources", "", "source directory (overrides config)")
	queryCmd.Flags().IntVar(&queryLimitFlag, "limit", 0, "maximum number of results (0 = unbounded)")
}
