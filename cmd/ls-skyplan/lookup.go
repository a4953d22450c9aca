package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skyplan/internal/names"
)

var (
	lookupOffline bool
	lookupList    bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name...]",
	Short: "Look up object coordinates by name",
	Long: `lookup resolves object names to ICRS coordinates through the CDS Sesame
service, falling back to the bundled catalog. With --offline only the
bundled catalog is consulted; --list prints its contents.`,
	Example: `  ls-skyplan lookup Vega "Alpha Centauri" M31
  ls-skyplan lookup --offline polaris
  ls-skyplan lookup --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lookupList {
			for _, n := range names.NewTableResolver().Names() {
				fmt.Println(n)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("no names given (or use --list)")
		}

		resolver := newResolver(lookupOffline)

		fmt.Printf("%-24s %12s %12s\n", "Name", "ra", "dec")
		fmt.Println(strings.Repeat("─", 50))

		var failed int
		for _, name := range args {
			coord, err := resolver.Resolve(cmd.Context(), name)
			if err != nil {
				fmt.Printf("%-24s %s\n", truncate(name, 24), err)
				failed++
				continue
			}
			icrs := coord.ICRS()
			fmt.Printf("%-24s %12.6f %12.6f\n", truncate(name, 24), icrs.LonDeg, icrs.LatDeg)
		}

		if failed == len(args) {
			return fmt.Errorf("no names resolved")
		}
		return nil
	},
}

func init() {
	f := lookupCmd.Flags()
	f.BoolVar(&lookupOffline, "offline", false, "Use only the bundled catalog")
	f.BoolVar(&lookupList, "list", false, "List the bundled catalog names")
}
