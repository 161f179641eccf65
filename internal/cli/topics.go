package cli

import (
	"context"
	"fmt"

	"atlas/internal/derive"
	"atlas/internal/model"

	"github.com/spf13/cobra"
)

func newTopicsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List and add topics",
	}
	cmd.AddCommand(newTopicsListCmd(app))
	cmd.AddCommand(newTopicsAddCmd(app))
	return cmd
}

// topicJSON is the list/add output row: the topic plus its owning category.
type topicJSON struct {
	model.Topic
	CatID   string `json:"catId"`
	CatName string `json:"catName"`
}

func newTopicsListCmd(app *App) *cobra.Command {
	var (
		query    string
		category string
		tags     []string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics through the same filter pipeline the TUI uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			cats := s.Load(context.Background())

			var flat []derive.FlatTopic
			switch {
			case query == "" && category == "" && len(tags) == 0:
				flat = derive.Flatten(cats)
			default:
				activeCat := category
				if activeCat == "" && len(cats) > 0 {
					activeCat = cats[0].ID
				}
				flat = derive.VisibleTopics(cats, query, activeCat, tags)
			}

			out := make([]topicJSON, 0, len(flat))
			for _, t := range flat {
				out = append(out, topicJSON{Topic: t.Topic, CatID: t.CatID, CatName: t.CatName})
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search all topics (title/summary/notes/tags substring)")
	cmd.Flags().StringVar(&category, "category", "", "Category id to browse when no query is given")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Keep only topics with at least one of these tags (repeatable)")
	return cmd
}

func newTopicsAddCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a topic to a category (defaults: role Note, confidence 50)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			s, err := app.store()
			if err != nil {
				return err
			}
			ctx := context.Background()
			cats := s.Load(ctx)

			catID := category
			if catID == "" && len(cats) > 0 {
				catID = cats[0].ID
			}
			c := model.FindCategory(cats, catID)
			if c == nil {
				return fmt.Errorf("unknown category %q", catID)
			}

			t := model.NewTopic(model.TopicID(title), title)
			// New topics go to the front of their category.
			c.Topics = append([]model.Topic{t}, c.Topics...)

			if err := s.Save(ctx, cats); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			return writeOut(cmd, app, topicJSON{Topic: t, CatID: c.ID, CatName: c.Name})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category id (default: first category)")
	return cmd
}
