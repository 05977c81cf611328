package main

import (
	"cmp"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/chatmodel"
	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

func modelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models [provider]",
		Short: "List built-in models with resolved cost and window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providers := provider.APIBasedProviders()
			if len(args) == 1 {
				p, err := provider.Parse(args[0])
				if err != nil {
					return err
				}
				providers = []provider.Provider{p}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tMODEL\tINPUT\tOUTPUT\tWINDOW")
			for _, p := range providers {
				for _, name := range chatmodel.ModelNames(p) {
					fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%d\n", p, name,
						a.svc.InputCost(p, name), a.svc.OutputCost(p, name), a.svc.WindowContext(p, name))
				}
			}
			return w.Flush()
		},
	}
}

func paramsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params <provider> <model>",
		Short: "Show the parameters a chat client would be built with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := provider.Parse(args[0])
			if err != nil {
				return err
			}
			params := chatmodel.Resolve(a.svc, p, args[1])

			apiKey := "(none)"
			if params.APIKey != "" {
				apiKey = "(set)"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "provider\t%s\n", params.Provider)
			fmt.Fprintf(w, "model\t%s\n", params.ModelName)
			fmt.Fprintf(w, "baseURL\t%s\n", params.BaseURL)
			fmt.Fprintf(w, "apiKey\t%s\n", apiKey)
			fmt.Fprintf(w, "temperature\t%g\n", params.Temperature)
			fmt.Fprintf(w, "topP\t%g\n", params.TopP)
			fmt.Fprintf(w, "maxTokens\t%d\n", params.MaxTokens)
			fmt.Fprintf(w, "maxRetries\t%d\n", params.MaxRetries)
			fmt.Fprintf(w, "timeout\t%s\n", params.Timeout)
			return w.Flush()
		},
	}
}

func sortedKeys[V any](m map[model.CostKey]V) []model.CostKey {
	keys := make([]model.CostKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y model.CostKey) int {
		return cmp.Or(
			cmp.Compare(x.Provider, y.Provider),
			cmp.Compare(x.ModelName, y.ModelName),
		)
	})
	return keys
}
