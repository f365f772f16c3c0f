package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/bank"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Browse the question bank",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions (optionally filtered by dimension)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		locale := cfg.Locale()

		var questions []bank.Question
		if d, _ := cmd.Flags().GetString("dimension"); d != "" {
			dim, ok := bank.ParseDimension(d)
			if !ok {
				return fmt.Errorf("unknown dimension %q (use EI, SN, TF or JP)", d)
			}
			questions = bank.Questions(dim)
		} else {
			questions = bank.All()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s  %-3s  %s\n", "ID", "Dim", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, q := range questions {
			fmt.Fprintf(out, "%-6s  %-3s  %s\n", q.ID, q.Dimension, truncate(q.Text.In(locale), 64))
		}

		fmt.Fprintf(out, "\n%d questions\n", len(questions))
		return nil
	},
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func init() {
	questionsListCmd.Flags().String("dimension", "", "Filter by dimension (EI, SN, TF or JP)")

	questionsCmd.AddCommand(questionsListCmd)
}
