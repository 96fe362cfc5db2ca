package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	algocomplex "github.com/cwbudde/algo-complex"
)

var tableSteps int

var tableCmd = &cobra.Command{
	Use:   "table <function> <start> <end>",
	Short: "Tabulate a function along a line in the complex plane",
	Long: `Tabulate a unary function at evenly spaced points on the segment
from <start> to <end>. Each row shows the input, the double-precision
result, and the result rounded to single precision, which makes values
that do not survive the narrowing easy to spot.`,
	Args: cobra.ExactArgs(3),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().IntVar(&tableSteps, "steps", 16, "number of sample points")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	fn, ok := unaryFuncs[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q, expected one of: %s", args[0], functionNames())
	}
	start, err := algocomplex.Parse[float64](args[1])
	if err != nil {
		return err
	}
	end, err := algocomplex.Parse[float64](args[2])
	if err != nil {
		return err
	}
	if tableSteps < 2 {
		return fmt.Errorf("need at least 2 steps")
	}

	step := end.Sub(start).DivReal(float64(tableSteps - 1))
	fmt.Printf("%-28s %-28s %s\n", "z", args[0]+"(z)", "float32")
	for i := 0; i < tableSteps; i++ {
		z := start.Add(step.MulReal(float64(i)))
		r := fn(z)
		fmt.Printf("%-28v %-28v %v\n", z, r, algocomplex.Convert[float32](r))
	}
	return nil
}
