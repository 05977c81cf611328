package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/settings"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := settings.JSONSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	// No settings are needed to print the schema.
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }

	return cmd
}
