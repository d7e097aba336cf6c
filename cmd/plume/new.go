package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/plume-ssg/plume/internal/article"
	"github.com/plume-ssg/plume/internal/config"
	"github.com/plume-ssg/plume/internal/prompt"
	"github.com/plume-ssg/plume/internal/writer"
)

func newNewCmd() *cobra.Command {
	var req article.Request
	var interactive bool

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new article or page file",
		Long: `Create a new article or page file with a front-matter header.

Fields left off the command line are taken from plume.yaml when present,
then from built-in defaults. With --prompt (the default) every field is
asked for interactively and the result opens in $EDITOR for review.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			cfg, err := config.Load(fs)
			if err != nil {
				return err
			}
			if len(args) == 1 && req.Title == "" {
				req.Title = args[0]
			}
			applyDefaults(&req, cfg)

			if interactive {
				req, err = prompt.Collect(req)
				if err != nil {
					return err
				}
			} else if req.Title == "" {
				return fmt.Errorf("must provide a title")
			}

			if err := article.Validate(req.Markup); err != nil {
				return err
			}

			content, path, err := article.Generate(req, time.Now())
			if err != nil {
				return err
			}

			if interactive {
				content, err = prompt.Review(content, strings.ToLower(req.Markup))
				if err != nil {
					return err
				}
			}

			return writer.New(fs, cmd.OutOrStdout()).Save(content, path)
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "the article title")
	cmd.Flags().StringVar(&req.ContentType, "content-type", "article",
		fmt.Sprintf("the content type to be created (%s)", strings.Join(article.TypeChoices, ", ")))
	cmd.Flags().StringVar(&req.Author, "author", "", "set the author of the article (default: current user or plume.yaml)")
	cmd.Flags().StringVar(&req.Tags, "tags", "", "set tags to the article (separated by comma)")
	cmd.Flags().StringVar(&req.Category, "category", "", "set the article category")
	cmd.Flags().StringVar(&req.Slug, "slug", "", "set a custom article slug (default: generates slug from title)")
	cmd.Flags().StringVar(&req.Status, "status", "",
		fmt.Sprintf("publication status (%s)", strings.Join(article.StatusChoices, ", ")))
	cmd.Flags().StringVar(&req.Path, "path", "", `path to save the article file (default: "content" or plume.yaml)`)
	cmd.Flags().StringVar(&req.Markup, "markup", "",
		fmt.Sprintf("the markup style for the article (%s)", strings.Join(article.MarkupChoices, ", ")))
	cmd.Flags().BoolVar(&interactive, "prompt", true, "ask for every field interactively (--prompt=false disables)")

	return cmd
}

// applyDefaults fills request fields the flags left empty from the
// loaded config. Flags always win.
func applyDefaults(req *article.Request, cfg *config.Config) {
	if req.Author == "" {
		req.Author = cfg.Author
	}
	if req.Path == "" {
		req.Path = cfg.Path
	}
	if req.Markup == "" {
		req.Markup = cfg.Markup
	}
	if req.ContentType == "" {
		req.ContentType = "article"
	}
}
