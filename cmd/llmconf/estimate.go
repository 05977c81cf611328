package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/tokens"
	"github.com/randalmurphal/llmconf/truncate"
)

func estimateCmd(a *app) *cobra.Command {
	var outputTokens int

	cmd := &cobra.Command{
		Use:   "estimate <provider> <model> [file]",
		Short: "Estimate tokens and cost of a prompt",
		Long: `Estimate the token count of a prompt read from file (or stdin), its cost,
and whether it fits the model's context window after reserving the
configured max output tokens.

Examples:
  llmconf estimate OpenAI gpt-4 prompt.txt
  git diff | llmconf estimate Anthropic claude-3-opus-20240229`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := provider.Parse(args[0])
			if err != nil {
				return err
			}
			modelName := args[1]

			text, err := readPrompt(cmd, args[2:])
			if err != nil {
				return err
			}

			reserved := a.svc.Generation().MaxOutputTokens
			if outputTokens <= 0 {
				outputTokens = reserved
			}
			budget := tokens.ForModel(a.svc, p, modelName, reserved)
			n := budget.Count(text)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "tokens\t%d\n", n)
			fmt.Fprintf(w, "window\t%d (%d reserved)\n", budget.Window, budget.Reserved)
			fmt.Fprintf(w, "fits\t%t\n", budget.FitsTokens(n))
			fmt.Fprintf(w, "remaining\t%d\n", budget.Remaining(n))
			fmt.Fprintf(w, "cost\t%.6f\n", tokens.Cost(a.svc, p, modelName, n, outputTokens))
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&outputTokens, "output-tokens", 0, "expected response tokens (default: configured max output tokens)")

	return cmd
}

func fitCmd(a *app) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "fit <provider> <model> [file]",
		Short: "Trim a prompt to the model's context window",
		Long: `Print the prompt read from file (or stdin), trimmed to fit the model's
context window after reserving the configured max output tokens.

Strategies: end (keep the head), middle (keep head and tail), start (keep the tail).`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := provider.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := truncate.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			text, err := readPrompt(cmd, args[2:])
			if err != nil {
				return err
			}

			budget := tokens.ForModel(a.svc, p, args[1], a.svc.Generation().MaxOutputTokens)
			fitted, cut := truncate.New(s).Fit(budget, text)
			if cut {
				fmt.Fprintf(cmd.ErrOrStderr(), "truncated to %d tokens (%s)\n", budget.Count(fitted), s)
			}
			fmt.Fprint(cmd.OutOrStdout(), fitted)
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "end", "what to drop: end, middle or start")

	return cmd
}

// readPrompt reads the prompt from the optional file argument or stdin.
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open prompt: %w", err)
		}
		defer f.Close()
		r = f
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(text), nil
}
