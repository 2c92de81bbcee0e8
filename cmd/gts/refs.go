package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/identifier"
)

var (
	refsSourcesFlag string
	refsBrokenFlag  bool
)

var refsCmd = &cobra.Command{
	Use:   "refs [schema-identifier]",
	Short: "Show broken references, or every schema chaining through a given schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(refsSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}

		if refsBrokenFlag || len(args) == 0 {
			for _, br := range st.BrokenReferences() {
				fmt.Printf("%s -> missing %s\n", br.InstanceID.Render(), br.MissingSchemaID.Render())
			}
			return nil
		}

		id, err := identifier.Parse(args[0])
		if err != nil {
			return err
		}
		for _, referent := range st.ChainReferents(id) {
			fmt.Println(referent.Render())
		}
		return nil
	},
}

func init() {
	refsCmd.Flags().StringVar(&refsSourcesFlag, "sources", "", "source directory (overrides config)")
	refsCmd.Flags().BoolVar(&refsBrokenFlag, "broken", false, "list broken schema references instead of chain referents")
}
