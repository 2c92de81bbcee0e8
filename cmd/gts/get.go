package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/identifier"
)

var getSourcesFlag string

var getCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Print the document for a single entity identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identifier.Parse(args[0])
		if err != nil {
			return err
		}
		st, _, err := openStore(getSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		rec, ok := st.Get(id)
		if !ok {
			return fmt.Errorf("not found: %s", id.Render())
		}
		out, err := json.MarshalIndent(rec.Value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getSourcesFlag, "sources", "", "source directory (overrides config)")
}
