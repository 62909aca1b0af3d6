package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewLookupCommand looks up real-world measurements by name.
func NewLookupCommand(opts *Options) *cobra.Command {
	var (
		format string
		find   bool
	)

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Look up a real-world measurement by name",
		Example: `  quantify lookup cup
  quantify lookup "a normal bath of water"
  quantify lookup --find engine`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")

			if find {
				entries := opts.Store.Find(term)
				if len(entries) == 0 {
					return fmt.Errorf("no measurements matching %q", term)
				}
				if opts.jsonOutput(format) {
					out := make(map[string]string, len(entries))
					for _, e := range entries {
						out[e.Name] = e.Quantity.String()
					}
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(out)
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Name, e.Quantity)
				}
				return nil
			}

			q, ok := opts.Store.Get(term)
			if !ok {
				// Fall back to phrase parsing: "5 meters" or a phrase
				// containing a known entry name.
				q, ok = opts.Store.ParseText(term)
			}
			if !ok {
				return fmt.Errorf("no measurement for %q", term)
			}

			if opts.jsonOutput(format) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(q)
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json)")
	cmd.Flags().BoolVar(&find, "find", false, "List all entries containing the term")
	return cmd
}
