// Package article holds the scaffolding pipeline: a request built from
// flags or prompts, slug normalization, markup validation, and the pure
// generation step that produces file content and a target path.
package article

import (
	"fmt"
	"strings"
)

var (
	// TypeChoices are the supported content types.
	TypeChoices = []string{"article", "page"}
	// MarkupChoices are the supported markup formats.
	MarkupChoices = []string{"md", "rst"}
	// StatusChoices are the supported publication statuses.
	StatusChoices = []string{"draft", "hidden", "published"}
)

// Request carries every field needed to scaffold one file. It is built
// once per invocation and discarded after the file is written.
type Request struct {
	ContentType string
	Title       string
	Slug        string
	Tags        string // raw comma-separated input
	Category    string
	Author      string
	Status      string
	Markup      string
	Path        string
}

// InvalidMarkupError reports a markup format outside the supported set.
type InvalidMarkupError struct {
	Markup string
}

func (e *InvalidMarkupError) Error() string {
	return fmt.Sprintf("%s is not a valid markup format, available options are %s",
		e.Markup, strings.Join(MarkupChoices, ", "))
}

// Validate checks the markup field against the supported set,
// case-insensitively. It is the only validation the pipeline performs
// before generation.
func Validate(markup string) error {
	for _, choice := range MarkupChoices {
		if strings.EqualFold(markup, choice) {
			return nil
		}
	}
	return &InvalidMarkupError{Markup: markup}
}

// SplitTags turns raw comma-separated input into a clean tag list.
// Empty input yields nil.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
