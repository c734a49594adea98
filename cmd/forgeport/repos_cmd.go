package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/forge"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/registry"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newReposCmd() *cobra.Command {
	var registryPath string

	cmd := &cobra.Command{
		Use:     "repos",
		Short:   "Manage the repo registry",
		GroupID: GroupRegistry,
		Long: `Manage the registry of forge repositories (gitea_repos.json) that
'forgeport migrate' and 'forgeport verify' resolve names against.`,
	}

	cmd.PersistentFlags().StringVar(&registryPath, "registry", "", "Path to the repo registry JSON")

	loadRegistry := func() (*registry.Registry, error) {
		fallback(&registryPath, cfg.Registry)
		return registry.Load(registryPath)
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered repositories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			names := reg.Names()
			if len(names) == 0 {
				out.Printf("No repositories in %s\n", reg.Path())
				return nil
			}
			for _, name := range names {
				repo, err := reg.Resolve(name)
				if err != nil {
					return err
				}
				out.Printf("%s  %s\n", styles.AccentStyle.Render(name), styles.MutedStyle.Render(repo.SSH))
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [name] <url>",
		Short: "Register a repository",
		Args:  cobra.RangeArgs(1, 2),
		Long: `Register a forge repository under a short name.

With a single URL argument, the name is derived from the repo path.`,
		Example: `  forgeport repos add a51 ssh://git@forge.example.com:2222/machines/a51.git
  forgeport repos add ssh://git@forge.example.com:2222/machines/a51.git   # name: a51`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			var name, url string
			switch len(args) {
			case 1:
				url = args[0]
				remote, err := forge.ParseRemote(url)
				if err != nil {
					return fmt.Errorf("cannot derive a name from %q: %w (pass one explicitly)", url, err)
				}
				name = remote.Name
			case 2:
				name, url = args[0], args[1]
			}

			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			if err := reg.Add(registry.Repo{Name: name, SSH: url}); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			out.Printf("%s Added %s\n", styles.SuccessStyle.Render(styles.CheckMark), name)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a repository from the registry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			if err := reg.Remove(args[0]); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			out.Printf("%s Removed %s\n", styles.SuccessStyle.Render(styles.CheckMark), args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, removeCmd)

	return cmd
}
