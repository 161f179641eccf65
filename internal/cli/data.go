package cli

import (
	"context"
	"fmt"
	"os"

	"atlas/internal/store"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the full tree as indented JSON (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			cats := s.Load(context.Background())
			b, err := store.EncodeTree(cats)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := os.WriteFile(args[0], append(b, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the whole tree with a JSON export",
		Long: "Replace the whole tree with the given JSON document. The file must contain\n" +
			"a top-level array of categories; anything else is rejected and nothing changes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			cats, err := store.DecodeTree(b)
			if err != nil {
				return fmt.Errorf("import rejected: %w", err)
			}
			s, err := app.store()
			if err != nil {
				return err
			}
			if err := s.Save(context.Background(), cats); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories\n", len(cats))
			return nil
		},
	}
}
