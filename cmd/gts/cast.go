package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/caster"
	"github.com/gts-project/gts/internal/compat"
	"github.com/gts-project/gts/internal/identifier"
)

var castSourcesFlag string

var castCmd = &cobra.Command{
	Use:   "cast <instance-identifier> <target-schema-identifier>",
	Short: "Cast an instance to a different minor schema version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		instanceID, err := identifier.Parse(args[0])
		if err != nil {
			return err
		}
		targetID, err := identifier.Parse(args[1])
		if err != nil {
			return err
		}

		st, _, err := openStore(castSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		instanceRec, ok := st.Get(instanceID)
		if !ok {
			return fmt.Errorf("not found: %s", instanceID.Render())
		}
		if instanceRec.SchemaID == nil {
			return fmt.Errorf("%s has no schema_id", instanceID.Render())
		}
		oldSchemaRec, ok := st.Get(*instanceRec.SchemaID)
		if !ok {
			return fmt.Errorf("schema not found: %s", instanceRec.SchemaID.Render())
		}
		targetSchemaRec, ok := st.Get(targetID)
		if !ok {
			return fmt.Errorf("schema not found: %s", targetID.Render())
		}

		oldSchema, _ := oldSchemaRec.Value.(map[string]any)
		targetSchema, _ := targetSchemaRec.Value.(map[string]any)
		report := compat.Compare(oldSchema, targetSchema)

		dir := caster.ToNewer
		oldLinks := instanceRec.SchemaID.ChainLinks()
		targetLinks := targetSchemaRec.EntityID.ChainLinks()
		if oldLinks[len(oldLinks)-1].Minor > targetLinks[len(targetLinks)-1].Minor {
			dir = caster.ToOlder
		}

		out, err := caster.Cast(instanceRec.Value, report, dir, oldSchema, targetSchema)
		if err != nil {
			return err
		}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	castCmd.Flags().StringVar(&castSourcesFlag, "sources", "", "source directory (overrides config)")
}
