package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/compat"
	"github.com/gts-project/gts/internal/identifier"
)

var compatSourcesFlag string

var compatCmd = &cobra.Command{
	Use:   "compat <old-schema-identifier> <new-schema-identifier>",
	Short: "Report backward/forward compatibility between two schemas",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldID, err := identifier.Parse(args[0])
		if err != nil {
			return err
		}
		newID, err := identifier.Parse(args[1])
		if err != nil {
			return err
		}
		if !identifier.SameFamily(oldID, newID) {
			return fmt.Errorf("%s and %s do not share vendor/package/namespace/type", oldID.Render(), newID.Render())
		}

		st, _, err := openStore(compatSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		oldRec, ok := st.Get(oldID)
		if !ok {
			return fmt.Errorf("not found: %s", oldID.Render())
		}
		newRec, ok := st.Get(newID)
		if !ok {
			return fmt.Errorf("not found: %s", newID.Render())
		}
		oldSchema, _ := oldRec.Value.(map[string]any)
		newSchema, _ := newRec.Value.(map[string]any)

		report := compat.Compare(oldSchema, newSchema)
		printVerdict(report.Backward, report.Forward, report.Full)
		for _, r := range report.Reasons {
			detailColor.Printf("  %s %s: %s\n", r.Pointer, r.Kind, r.Detail)
		}
		return nil
	},
}

func init() {
	compatCmd.Flags().StringVar(&compatSourcesFlag, "sources", "", "source directory (overrides config)")
}
