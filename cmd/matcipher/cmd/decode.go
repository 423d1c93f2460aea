package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcipher/envelope"

	"github.com/spf13/cobra"
)

func newDecodeCmd(st *state) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [values...]",
		Short: "Decode integers (arguments or stdin) or a YAML envelope from stdin",
		Long: `Decode integers given as arguments (space or comma separated) or on stdin.
Put -- before the values when the first one is negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			asEnvelope, _ := cmd.Flags().GetBool("envelope")
			out := cmd.OutOrStdout()

			if asEnvelope {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				env, err := envelope.Unmarshal(data)
				if err != nil {
					return err
				}
				text, err := envelope.Open(st.cipher, env)
				if err != nil {
					return err
				}
				st.logger.Info("opened envelope", "id", env.ID, "length", env.Length)
				fmt.Fprintln(out, text)

				return nil
			}

			fields := args
			if len(fields) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				fields = strings.Fields(string(data))
			}
			values, err := parseInts(fields)
			if err != nil {
				return err
			}
			text, err := st.cipher.Decode(values)
			if err != nil {
				return err
			}
			st.logger.Info("decoded message", "values", len(values))
			fmt.Fprintln(out, text)

			return nil
		},
	}
	decodeCmd.Flags().Bool("envelope", false, "Read a YAML envelope from stdin")

	return decodeCmd
}

// parseInts accepts space- or comma-separated integers.
func parseInts(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		for _, part := range strings.Split(f, ",") {
			if part == "" {
				continue
			}
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", part, err)
			}
			values = append(values, v)
		}
	}

	return values, nil
}
