package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

func costCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Per-model token costs",
		Long:  "Resolve and override per-million-token costs of api-based models",
	}

	cmd.AddCommand(
		costGetCmd(a),
		costSetCmd(a),
		costListCmd(a),
	)
	return cmd
}

func costGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <provider> <model>",
		Short: "Resolve the input and output cost of a model",
		Long: `Resolve the cost per million tokens of a model.

Resolution falls back from overrides to the built-in table, then to the
closest model of the same family. Local providers always cost 0.

Examples:
  llmconf cost get OpenAI gpt-4
  llmconf cost get OpenAI gpt-4-1106-preview`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := provider.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input:  %g\n", a.svc.InputCost(p, args[1]))
			fmt.Fprintf(out, "output: %g\n", a.svc.OutputCost(p, args[1]))
			return nil
		},
	}
}

func costSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <provider> <model> <input> <output>",
		Short: "Override the cost of a model",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := apiProvider(args[0])
			if err != nil {
				return err
			}
			in, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("parse input cost: %w", err)
			}
			outCost, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("parse output cost: %w", err)
			}

			a.svc.SetModelCost(p, args[1], in, outCost)
			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s: input %g, output %g\n", model.NewCostKey(p, args[1]), in, outCost)
			return nil
		},
	}
}

func costListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cost overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, outCosts := a.svc.InputCosts(), a.svc.OutputCosts()
			keys := make(map[model.CostKey]bool, len(in))
			for k := range in {
				keys[k] = true
			}
			for k := range outCosts {
				keys[k] = true
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tINPUT\tOUTPUT")
			for _, k := range sortedKeys(keys) {
				fmt.Fprintf(w, "%s\t%g\t%g\n", k, in[k], outCosts[k])
			}
			return w.Flush()
		},
	}
}

func windowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Per-model context windows",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <provider> <model>",
			Short: "Resolve the context window of a model",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := provider.Parse(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.svc.WindowContext(p, args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <provider> <model> <tokens>",
			Short: "Override the context window of a model",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := apiProvider(args[0])
				if err != nil {
					return err
				}
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("parse window size: %w", err)
				}

				a.svc.SetModelWindowContext(p, args[1], n)
				if err := a.save(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s: window %d\n", model.NewCostKey(p, args[1]), n)
				return nil
			},
		},
	)
	return cmd
}

// apiProvider parses name and rejects local providers, whose overrides the
// service would silently drop.
func apiProvider(name string) (provider.Provider, error) {
	p, err := provider.Parse(name)
	if err != nil {
		return "", err
	}
	if !p.APIBased() {
		return "", fmt.Errorf("%s is a local provider; its costs and windows are fixed", p)
	}
	return p, nil
}
