package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/config"
	"github.com/bask185/forgeport/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupUtility,
		Long: `Manage forgeport configuration.

Config file: ~/.config/forgeport/config.toml`,
		Example: `  forgeport config init   # Create default config
  forgeport config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  forgeport config init      # Create ~/.config/forgeport/config.toml
  forgeport config init -f   # Overwrite existing config
  forgeport config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				fmt.Print(defaultConfigTemplate)
				return nil
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
				}
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0644); err != nil {
				return err
			}

			fmt.Printf("Created config file: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  forgeport config show
  forgeport config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(configPath); err == nil {
				out.Printf("Config file: %s\n", configPath)
			} else {
				out.Printf("Config file: %s (not found, using defaults)\n", configPath)
			}
			out.Println()

			out.Printf("registry            = %s\n", cfg.Registry)
			out.Printf("token_env           = %s\n", cfg.TokenEnv)
			out.Printf("migrate.org         = %s\n", cfg.Migrate.Org)
			out.Printf("migrate.user        = %s\n", cfg.Migrate.User)
			out.Printf("migrate.helper      = %s\n", cfg.Migrate.Helper)
			out.Printf("migrate.workdir     = %s\n", cfg.Migrate.Workdir)
			out.Printf("release.public_root = %s\n", cfg.Release.PublicRoot)
			out.Printf("release.layout      = %s\n", cfg.Release.Layout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

const defaultConfigTemplate = `# forgeport configuration

# Path to the repo registry (name -> forge SSH URL).
registry = "gitea_repos.json"

# Environment variable holding a GitHub API token, used for optional
# metadata lookups. Leave as is unless your token lives elsewhere.
token_env = "GITHUB_TOKEN"

[migrate]
# Target GitHub organization for migrated repos.
org = ""

# GitHub username pushes are pinned to.
user = ""

# Credential provider for github.com: "gh" or "gcm".
helper = "gh"

# Temp working folder for bare mirror clones.
workdir = ".mirror_work"

[release]
# Checkout of the public releases repo, e.g. "~/releases-public".
public_root = ""

# Where releases land inside the public root.
layout = "{machine}/{version}"
`
