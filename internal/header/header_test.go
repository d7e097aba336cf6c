package header

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		meta     Meta
		expected string
	}{
		{
			name: "all fields",
			meta: Meta{
				Title:      "Hello World",
				Date:       "2026-08-31 14:07",
				Author:     "pat",
				Categories: []string{"news"},
				Tags:       []string{"a", "b"},
				Slug:       "hello-world",
				Status:     "draft",
			},
			expected: "Title: Hello World\n" +
				"Date: 2026-08-31 14:07\n" +
				"Author: pat\n" +
				"Category: news\n" +
				"Tags: a, b\n" +
				"Slug: hello-world\n" +
				"Status: draft\n" +
				"\n",
		},
		{
			name: "empty fields omitted",
			meta: Meta{Title: "About", Slug: "about"},
			expected: "Title: About\n" +
				"Slug: about\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Markdown(tt.meta); got != tt.expected {
				t.Errorf("Markdown() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRest(t *testing.T) {
	meta := Meta{
		Title:  "Hi",
		Date:   "2026-08-31 14:07",
		Author: "pat",
		Slug:   "hi",
	}
	expected := "Hi\n" +
		"##\n" +
		":date: 2026-08-31 14:07\n" +
		":author: pat\n" +
		":slug: hi\n" +
		"\n"
	if got := Rest(meta); got != expected {
		t.Errorf("Rest() = %q, want %q", got, expected)
	}
}

func TestRestUnderlineCoversUnicodeTitle(t *testing.T) {
	got := Rest(Meta{Title: "Héllo"})
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("unexpected output: %q", got)
	}
	if lines[1] != "#####" {
		t.Errorf("underline %q does not match title rune count", lines[1])
	}
}
