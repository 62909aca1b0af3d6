package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/quantify/extract"
)

// NewExtractCommand scans text for quantities.
func NewExtractCommand(opts *Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "extract TEXT...",
		Short: "Extract quantities from free text",
		Example: `  quantify extract "The power supply delivers 230 V at 10 A"
  quantify extract -f json "add 500 ml of olive oil"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			extractor := extract.New()

			if opts.jsonOutput(format) {
				out, err := extractor.ExtractJSON(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			found := extractor.Extract(text)
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no quantities found")
				return nil
			}
			for _, ex := range found {
				line := fmt.Sprintf("%s: %s", ex.Label, ex.Quantity)
				if ex.Item != "" {
					line += fmt.Sprintf(" (%s)", ex.Item)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json)")
	return cmd
}
