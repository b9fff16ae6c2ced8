package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/reqset/decl"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <manifest.yaml>",
		Short: "List the requirements a manifest declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := decl.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range set.Keys() {
				r, err := set.Get(key)
				if err != nil {
					return err
				}
				line := key
				if r.Subtype() != "" {
					line += fmt.Sprintf(" (%s)", r.Subtype())
				}
				if d := r.Domain(); d != nil {
					members := make([]string, len(d))
					for i, v := range d {
						members[i] = v.String()
					}
					line += fmt.Sprintf(" in {%s}", strings.Join(members, ", "))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
