// Package prompt covers the interactive half of the pipeline: the
// field-by-field collector and the editor review step.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/plume-ssg/plume/internal/article"
)

// Collect walks the user through every request field, pre-filling each
// question with the value already supplied on the command line. The
// path question comes last, defaulted to "<path>/<content type>s".
func Collect(req article.Request) (article.Request, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Content Type:").
				Options(choiceOptions(article.TypeChoices, req.ContentType)...).
				Value(&req.ContentType),
			huh.NewInput().
				Title("Content Title:").
				Validate(requireText("Must provide a title")).
				Value(&req.Title),
			huh.NewInput().
				Title("Author name:").
				Value(&req.Author),
			huh.NewInput().
				Title("Tags (comma separated):").
				Value(&req.Tags),
			huh.NewInput().
				Title("Category:").
				Value(&req.Category),
			huh.NewInput().
				Title("Slug:").
				Value(&req.Slug),
			huh.NewSelect[string]().
				Title("Status:").
				Options(choiceOptions(article.StatusChoices, req.Status)...).
				Value(&req.Status),
			huh.NewSelect[string]().
				Title("Markup Style:").
				Options(choiceOptions(article.MarkupChoices, req.Markup)...).
				Value(&req.Markup),
		),
	)
	if err := form.Run(); err != nil {
		return req, err
	}

	path := fmt.Sprintf("%s/%ss", req.Path, req.ContentType)
	pathForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path:").
				Value(&path),
		),
	)
	if err := pathForm.Run(); err != nil {
		return req, err
	}
	req.Path = path

	return req, nil
}

// choiceOptions puts the already-selected value first so it is the one
// highlighted when the list opens.
func choiceOptions(choices []string, current string) []huh.Option[string] {
	ordered := make([]string, 0, len(choices))
	for _, c := range choices {
		if c == current {
			ordered = append(ordered, c)
		}
	}
	for _, c := range choices {
		if c != current {
			ordered = append(ordered, c)
		}
	}
	return huh.NewOptions(ordered...)
}

func requireText(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
