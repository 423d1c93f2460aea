package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/katalvlaran/matcipher/cipher"
	"github.com/katalvlaran/matcipher/config"
	"github.com/katalvlaran/matcipher/internal/logging"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "matcipher.yaml"

// state is filled by the root PersistentPreRunE and read by subcommands.
type state struct {
	cfg    *config.Config
	logger *slog.Logger
	cipher *cipher.Cipher
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "matcipher",
		Short: "Matrix text cipher",
		Long: `matcipher maps text to numerals through a fixed alphabet, cuts them into
square message matrices and multiplies each by an invertible key matrix.
Decoding multiplies by the key's inverse, which must be supplied in the config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the YAML config")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format override (text, json)")

	rootCmd.AddCommand(
		newInitCmd(),
		newTableCmd(st),
		newEncodeCmd(st),
		newDecodeCmd(st),
		newKeycheckCmd(st),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the config (falling back to defaults when the default path is
// absent), sets up logging and builds the cipher.
func (st *state) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadConfig(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.DefaultConfig()
	default:
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		format = v
	}
	st.logger = logging.Setup(level, format, cmd.ErrOrStderr())
	st.cfg = cfg

	st.cipher, err = cfg.Cipher(st.logger)
	if err != nil {
		return fmt.Errorf("failed to build cipher: %w", err)
	}
	st.logger.Debug("cipher ready", "config", path, "dim", st.cipher.Dim(), "policy", cfg.Policy)

	return nil
}
