package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render <profile>",
		Short: "Print the command line described by a profile",
		Long: `Print the command line described by a profile.

Formats:
  string  the display form, including environment variables (default)
  array   one argument-vector token per line
  json    the argument vector as a JSON array`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			b, err := p.Builder(app.config())
			if err != nil {
				return err
			}
			cl := b.Build()

			out := cmd.OutOrStdout()
			switch format {
			case "string":
				fmt.Fprintln(out, cl.String())
			case "array":
				for _, token := range cl.Array() {
					fmt.Fprintln(out, token)
				}
			case "json":
				data, err := json.Marshal(cl.Array())
				if err != nil {
					return fmt.Errorf("failed to encode command line: %w", err)
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "string", "output format (string, array, json)")

	return cmd
}
