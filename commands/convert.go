package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c360studio/quantify/quantity"
)

// NewConvertCommand converts a value between units.
func NewConvertCommand(opts *Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM_UNIT TO_UNIT",
		Short: "Convert a value between compatible units",
		Example: `  quantify convert 5 meter centimeter
  quantify convert 100 km/h meter/second
  quantify convert 21.5 celsius fahrenheit`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			q, err := quantity.New(value, args[1])
			if err != nil {
				return err
			}

			converted, err := q.Convert(args[2])
			if err != nil {
				return err
			}

			if opts.jsonOutput(format) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(converted)
			}
			fmt.Fprintln(cmd.OutOrStdout(), converted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json)")
	return cmd
}
