package main

import (
	"fmt"
	"os"

	"tempconv/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tempconv config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config (file, environment and flags)",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", configPath, data)
	return nil
}
