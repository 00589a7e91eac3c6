package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/optbridge/internal/half"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <value>...",
	Short: "Encode values as half precision",
	Long: `Encodes each numeric argument as a 16-bit half precision float and
prints its bit pattern together with the value that decodes back.
Values beyond the half precision range come back as infinity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}

		h := half.FromFloat64(v)
		fmt.Printf("%s -> 0x%04x -> %g\n", arg, h.Bits(), h.Float64())
	}

	return nil
}
