// Package header renders front-matter blocks in the two markup
// dialects the scaffolder supports. Empty fields are omitted; list
// fields are comma-joined. Each header ends with a blank line so body
// text can be appended directly below it.
package header

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Meta is the metadata set a header can carry.
type Meta struct {
	Title      string
	Date       string
	Author     string
	Categories []string
	Tags       []string
	Slug       string
	Status     string
}

// Markdown renders a Pelican-style markdown header: one "Key: value"
// line per present field.
func Markdown(m Meta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", m.Title)
	writeField(&b, "Date", m.Date)
	writeField(&b, "Author", m.Author)
	writeField(&b, "Category", strings.Join(m.Categories, ", "))
	writeField(&b, "Tags", strings.Join(m.Tags, ", "))
	writeField(&b, "Slug", m.Slug)
	writeField(&b, "Status", m.Status)
	b.WriteString("\n")
	return b.String()
}

// Rest renders a reStructuredText header: the title with a full-width
// "#" underline, then one ":field:" line per present field.
func Rest(m Meta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", m.Title, strings.Repeat("#", utf8.RuneCountInString(m.Title)))
	writeDirective(&b, "date", m.Date)
	writeDirective(&b, "author", m.Author)
	writeDirective(&b, "category", strings.Join(m.Categories, ", "))
	writeDirective(&b, "tags", strings.Join(m.Tags, ", "))
	writeDirective(&b, "slug", m.Slug)
	writeDirective(&b, "status", m.Status)
	b.WriteString("\n")
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", key, value)
	}
}

func writeDirective(b *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(b, ":%s: %s\n", key, value)
	}
}
