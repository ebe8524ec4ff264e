package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinewhite/clinic_backend/config"
)

func NewCheckConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-config",
		Short: "Load and validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Printf("Configuration OK: environment=%s port=%d session_backend=%s\n",
				cfg.Server.Environment, cfg.Server.Port, cfg.Session.Backend)
			return nil
		},
	}

	return cmd
}
