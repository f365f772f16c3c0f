package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/archetype"
)

var archetypeCmd = &cobra.Command{
	Use:   "archetype [CODE]",
	Short: "Describe a personality type, or list all sixteen",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		locale := cfg.Locale()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, a := range archetype.All() {
				fmt.Fprintf(out, "%-4s  %s\n", a.Code, a.Name.In(locale))
			}
			return nil
		}

		a, err := archetype.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s\n", a.Code, a.Name.In(locale))
		fmt.Fprintln(out, a.Tagline.In(locale))
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.Description.In(locale))
		fmt.Fprintln(out)
		tags := make([]string, len(a.Traits))
		for i, t := range a.Traits {
			tags[i] = "#" + t.In(locale)
		}
		fmt.Fprintln(out, strings.Join(tags, "  "))
		return nil
	},
}
