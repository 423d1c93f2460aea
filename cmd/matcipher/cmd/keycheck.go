package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeycheckCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "keycheck",
		Short: "Verify that the decode key is the inverse of the encode key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := st.cfg.KeyPair()
			if err != nil {
				return err
			}
			if err := pair.Verify(); err != nil {
				st.logger.Error("key check failed", "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d×%d key pair is consistent\n", pair.Dim(), pair.Dim())

			return nil
		},
	}
}
