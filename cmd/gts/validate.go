package main

import (
	"github.com/spf13/cobra"

	"github.com/gts-project/gts/internal/identifier"
	gtsjsonschema "github.com/gts-project/gts/internal/jsonschema"
	"github.com/gts-project/gts/internal/validator"
)

var validateSourcesFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <instance-identifier>",
	Short: "Validate an instance against its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identifier.Parse(args[0])
		if err != nil {
			return err
		}
		st, _, err := openStore(validateSourcesFlag, verboseFlag)
		if err != nil {
			return err
		}
		v := validator.New(st, gtsjsonschema.New())
		result, err := v.ValidateInstance(id)
		if err != nil {
			printInvalid(err)
			for _, fe := range result.Errors {
				printValidationError(fe.Pointer, fe.Message)
			}
			return nil
		}
		printOK()
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSourcesFlag, "sources", "", "source directory (overrides config)")
}
