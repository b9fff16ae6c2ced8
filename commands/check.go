package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/reqset/decl"
	"github.com/c360studio/reqset/requirement"
)

func checkCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "check <manifest.yaml>",
		Short: "Fulfil a manifest from --set pairs and report readiness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := decl.LoadFile(args[0])
			if err != nil {
				return err
			}

			for _, pair := range sets {
				key, raw, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("--set %q: want key=value", pair)
				}
				value := parseScalar(raw)
				slog.Debug("fulfilling requirement",
					slog.String("key", key),
					slog.String("value", value.String()),
					slog.String("kind", value.Kind().String()))
				if err := set.Fulfil(key, value); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, key := range set.Keys() {
				r, err := set.Get(key)
				if err != nil {
					return err
				}
				status := "unfulfilled"
				if r.IsFulfilled() {
					v, err := r.Value()
					if err != nil {
						return err
					}
					status = v.String()
				}
				fmt.Fprintf(out, "%-20s %s\n", key, status)
			}

			if !set.AllFulfilled() {
				return fmt.Errorf("unfulfilled requirements: %s",
					strings.Join(set.Unfulfilled(), ", "))
			}
			fmt.Fprintln(out, "all requirements fulfilled")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "fulfil a requirement as key=value (repeatable)")
	return cmd
}

// parseScalar interprets a --set value, trying the narrowest reading first:
// the literals true/false, then int, then float, then plain string.
func parseScalar(raw string) requirement.Value {
	switch raw {
	case "true":
		return requirement.Bool(true)
	case "false":
		return requirement.Bool(false)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return requirement.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return requirement.Float(f)
	}
	return requirement.String(raw)
}
