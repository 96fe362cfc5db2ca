package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "complexcalc",
	Short: "Evaluate complex arithmetic and elementary functions",
	Long: `complexcalc evaluates the algo-complex function suite from the shell.

Complex values are written the way the library prints them: "(x, y)" for a
component pair, a bare real like "2.5", or "inf" for the point at infinity.

Commands:
  eval   - apply a function to one or two values
  polar  - convert between rectangular and polar form
  table  - tabulate a function along a line in the complex plane`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
