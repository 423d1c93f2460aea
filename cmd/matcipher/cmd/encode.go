package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matcipher/envelope"

	"github.com/spf13/cobra"
)

func newEncodeCmd(st *state) *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text (arguments or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			asEnvelope, _ := cmd.Flags().GetBool("envelope")

			out := cmd.OutOrStdout()
			if asEnvelope {
				env, err := envelope.Seal(st.cipher, text)
				if err != nil {
					return err
				}
				data, err := envelope.Marshal(env)
				if err != nil {
					return err
				}
				st.logger.Info("sealed envelope", "id", env.ID, "length", env.Length, "values", len(env.Values))
				_, err = out.Write(data)

				return err
			}

			encoded, err := st.cipher.Encode(text)
			if err != nil {
				return err
			}
			st.logger.Info("encoded message", "values", len(encoded))
			fmt.Fprintln(out, joinInts(encoded))

			return nil
		},
	}
	encodeCmd.Flags().Bool("envelope", false, "Emit a YAML envelope with ID and exact length")

	return encodeCmd
}

// textInput joins args with spaces, or reads stdin without its final newline.
func textInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
