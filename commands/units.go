package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/quantify/unit"
)

// NewUnitsCommand lists registered units or inspects one.
func NewUnitsCommand(opts *Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "units [UNIT]",
		Short: "List registered units or inspect one",
		Example: `  quantify units
  quantify units pascal
  quantify units km/h`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := unit.Default.Names()
				if opts.jsonOutput(format) {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(names)
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			spelling := args[0]
			res, err := unit.Default.Resolve(spelling)
			if err != nil {
				return err
			}

			if opts.jsonOutput(format) {
				out := map[string]any{
					"unit":      spelling,
					"dimension": res.Dim.String(),
					"scale":     res.Scale,
				}
				if res.Kind == unit.KindAffine {
					out["offset"] = res.Offset
				}
				if def, ok := unit.Default.Lookup(spelling); ok {
					out["name"] = def.Name
					if len(def.Aliases) > 0 {
						out["aliases"] = def.Aliases
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := cmd.OutOrStdout()
			if def, ok := unit.Default.Lookup(spelling); ok {
				fmt.Fprintf(w, "name:      %s\n", def.Name)
				if len(def.Aliases) > 0 {
					fmt.Fprintf(w, "aliases:   %s\n", strings.Join(def.Aliases, ", "))
				}
			}
			fmt.Fprintf(w, "dimension: %s\n", res.Dim)
			fmt.Fprintf(w, "scale:     %g\n", res.Scale)
			if res.Kind == unit.KindAffine {
				fmt.Fprintf(w, "offset:    %g\n", res.Offset)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json)")
	return cmd
}
