package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	algocomplex "github.com/cwbudde/algo-complex"
)

var polarFrom bool

var polarCmd = &cobra.Command{
	Use:   "polar <value> | polar --from <length> <phase>",
	Short: "Convert between rectangular and polar form",
	Long: `Convert a complex value to polar form, or build one from polar form.

Without --from, the argument is a complex value and the output is its
length and phase. With --from, the two arguments are a length and a
phase in radians, and the output is the rectangular value.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPolar,
}

func init() {
	polarCmd.Flags().BoolVar(&polarFrom, "from", false, "build a value from length and phase arguments")
	rootCmd.AddCommand(polarCmd)
}

func runPolar(cmd *cobra.Command, args []string) error {
	if polarFrom {
		if len(args) != 2 {
			return fmt.Errorf("polar --from takes a length and a phase")
		}
		length, err := algocomplex.Parse[float64](args[0])
		if err != nil {
			return err
		}
		phase, err := algocomplex.Parse[float64](args[1])
		if err != nil {
			return err
		}
		if length.Imag() != 0 || phase.Imag() != 0 {
			return fmt.Errorf("length and phase must be real")
		}
		fmt.Println(algocomplex.FromPolar(length.Real(), phase.Real()))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("polar takes a single complex value")
	}
	z, err := algocomplex.Parse[float64](args[0])
	if err != nil {
		return err
	}
	length, phase := z.Polar()
	fmt.Printf("length %v  phase %v\n", length, phase)
	return nil
}
