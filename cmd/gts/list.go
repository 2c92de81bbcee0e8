package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listSourcesFlag string
	listLimitFlag   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed entity identifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(listSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		for _, rec := range st.List(listLimitFlag) {
			fmt.Println(rec.EntityID.Render())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSourcesFlag, "sources", "", "source directory (overrides config)")
	listCmd.Flags().IntVar(&listLimitFlag, "limit", 0, "maximum number of records to print (0 = unbounded)")
}
