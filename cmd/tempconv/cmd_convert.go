package main

import (
	"fmt"

	"tempconv/internal/logging"
	"tempconv/internal/temperature"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertFrom string

// convertCmd converts one value and prints the result
var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert a single temperature",
	Long: `Prints the converted temperature. Text that is not a decimal number
prints "Invalid Input"; that is a result, not an error.

Example:
  tempconv convert 100
  tempconv convert --from fahrenheit 98.6
  tempconv convert -- -40`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "celsius", "Scale of the input: celsius or fahrenheit")
}

func runConvert(cmd *cobra.Command, args []string) error {
	scale, err := temperature.ParseScale(convertFrom)
	if err != nil {
		return err
	}
	dir := temperature.DirectionFrom(scale)
	out := temperature.Convert(args[0], dir)

	logging.Get(logging.CategoryCLI).Debug("convert",
		zap.Stringer("direction", dir),
		zap.String("input", args[0]),
		zap.String("output", out),
	)

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
