package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the symbol↔numeral correspondence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, r := range st.cipher.Numeralizer().Table().Symbols() {
				fmt.Fprintf(out, "%d\t%q\n", i, r)
			}

			return nil
		},
	}
}
