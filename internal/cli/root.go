package cli

import (
	"fmt"
	"strings"

	"atlas/internal/format"
	"atlas/internal/store"
	"atlas/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "atlas",
		Short:        "Atlas (local-first) research notebook CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  atlas

  # Scriptable commands
  atlas topics list --query antikythera
  atlas topics add "Hello World" --category amnesia
  atlas export backup.json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Path to store dir (default: $ATLAS_DIR, else ~/.atlas)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format: json or edn")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")

	cmd.AddCommand(newTopicsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := app.store()
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func (a *App) store() (store.Store, error) {
	dir := a.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, fmt.Errorf("resolve store dir: %w", err)
		}
		dir = d
	}
	return store.Store{Dir: dir}, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
