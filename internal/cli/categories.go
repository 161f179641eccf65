package cli

import (
	"context"
	"fmt"

	"atlas/internal/model"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and add categories",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesAddCmd(app))
	return cmd
}

type categoryJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Topics int    `json:"topics"`
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with topic counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			cats := s.Load(context.Background())
			out := make([]categoryJSON, 0, len(cats))
			for _, c := range cats {
				out = append(out, categoryJSON{ID: c.ID, Name: c.Name, Topics: len(c.Topics)})
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newCategoriesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add an empty category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := app.store()
			if err != nil {
				return err
			}
			ctx := context.Background()
			cats := s.Load(ctx)

			id := model.CategoryID(name)
			if model.FindCategory(cats, id) != nil {
				return fmt.Errorf("category %q already exists", id)
			}
			cats = append(cats, model.Category{ID: id, Name: name, Topics: []model.Topic{}})

			if err := s.Save(ctx, cats); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			return writeOut(cmd, app, categoryJSON{ID: id, Name: name})
		},
	}
}
