package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ingestSourcesFlag string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest the source tree and report what was indexed",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(ingestSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		records := st.List(0)
		fmt.Printf("indexed %d record(s)\n", len(records))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSourcesFlag, "sources", "", "source directory (overrides config)")
}
