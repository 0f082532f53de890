package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/concepts/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:       "demo [name...]",
	Short:     "Run demonstrations (all when no name is given)",
	Long:      "Run demonstrations. Available: " + strings.Join(demo.Names(), ", "),
	ValidArgs: demo.Names(),
	Args:      cobra.OnlyValidArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = demo.Names()
		}
		out := cmd.OutOrStdout()
		for _, name := range args {
			d, _ := demo.Lookup(name)
			d.Exec(out)
		}
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
