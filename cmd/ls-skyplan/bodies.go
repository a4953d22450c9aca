package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skyplan/internal/ephem"
	"github.com/litescript/ls-skyplan/internal/target"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List supported solar system bodies",
	Long: `bodies lists every solar system body the resolver accepts, with its
Horizons code and, for fast movers, the drift window after which a
cached position should be considered stale.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-10s %-8s %9s %-8s %s\n", "Name", "Kind", "Horizons", "Drift", "Aliases")
		fmt.Println(strings.Repeat("─", 48))

		for _, b := range ephem.Bodies {
			drift := "-"
			if d, ok := target.DriftFor(b.Name); ok {
				drift = d.String()
			}
			aliases := strings.Join(b.Aliases, ", ")
			if aliases == "" {
				aliases = "-"
			}
			fmt.Printf("%-10s %-8s %9d %-8s %s\n", b.Display, b.Kind, b.HorizonsID, drift, aliases)
		}
	},
}
