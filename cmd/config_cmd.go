// Package cmd implements the finsage CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsage-cli/finsage/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Gemini]")
	if cfg.Gemini.APIKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(cfg.Gemini.APIKey))
	} else {
		fmt.Println("    API key: not configured (set GEMINI_API_KEY)")
	}
	fmt.Printf("    Model:   %s\n", cfg.Gemini.Model)
	if cfg.Gemini.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Gemini.BaseURL)
	}
	fmt.Printf("    Timeout: %ds\n", cfg.Gemini.TimeoutSec)
	fmt.Println()

	fmt.Println("  [Advice]")
	fmt.Printf("    Currency: %s\n", cfg.Advice.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Printf("  Config already exists at %s\n", config.ConfigPath())
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote defaults to %s\n", config.ConfigPath())
	return nil
}

// maskAPIKey shows just enough of a key to recognize it.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
