package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/settings"
)

func promptsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Custom prompt commands",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List custom prompts",
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				for _, p := range a.svc.CustomPrompts() {
					fmt.Fprintf(out, "/%s\n    %s\n", p.Name, p.Prompt)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <name> <prompt...>",
			Short: "Add or replace a custom prompt",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := settings.CustomPrompt{Name: args[0], Prompt: strings.Join(args[1:], " ")}
				if err := a.svc.PutCustomPrompt(p); err != nil {
					return err
				}
				if err := a.save(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved /%s\n", p.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Remove a custom prompt",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.svc.RemoveCustomPrompt(args[0]) {
					return fmt.Errorf("no custom prompt named %q", args[0])
				}
				if err := a.save(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed /%s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
