package article

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 14, 7, 59, 0, time.Local)

func TestGenerateMarkdownArticle(t *testing.T) {
	req := Request{
		ContentType: "article",
		Title:       "Hello World",
		Tags:        "a,b",
		Category:    "news",
		Author:      "pat",
		Markup:      "md",
		Path:        "content",
	}

	content, path, err := Generate(req, testNow)
	require.NoError(t, err)

	assert.Equal(t, "content/hello-world.md", path)
	assert.Contains(t, content, "Title: Hello World\n")
	assert.Contains(t, content, "Date: 2026-08-31 14:07\n")
	assert.Contains(t, content, "Author: pat\n")
	assert.Contains(t, content, "Category: news\n")
	assert.Contains(t, content, "Tags: a, b\n")
	assert.Contains(t, content, "Slug: hello-world\n")
	assert.NotContains(t, content, "Status:")
}

func TestGeneratePageHasNoDate(t *testing.T) {
	req := Request{
		ContentType: "page",
		Title:       "About Me",
		Author:      "pat",
		Markup:      "md",
		Path:        "content/pages",
	}

	content, path, err := Generate(req, testNow)
	require.NoError(t, err)

	assert.Equal(t, "content/pages/about-me.md", path)
	assert.NotContains(t, content, "Date:")
}

func TestGenerateArticleAlwaysHasDate(t *testing.T) {
	req := Request{ContentType: "article", Title: "T", Markup: "rst", Path: "content"}

	content, _, err := Generate(req, testNow)
	require.NoError(t, err)
	assert.Contains(t, content, ":date: 2026-08-31 14:07\n")
}

func TestGenerateExplicitSlugWins(t *testing.T) {
	req := Request{
		ContentType: "article",
		Title:       "Some Long Title",
		Slug:        "Short Name",
		Markup:      "md",
		Path:        "content",
	}

	content, path, err := Generate(req, testNow)
	require.NoError(t, err)
	assert.Equal(t, "content/short-name.md", path)
	assert.Contains(t, content, "Slug: short-name\n")
}

func TestGenerateSlugRoundTrip(t *testing.T) {
	req := Request{ContentType: "article", Title: "Hello World", Markup: "md", Path: "content"}
	_, path, err := Generate(req, testNow)
	require.NoError(t, err)

	// Feeding the emitted slug back as an explicit slug is a fixed point.
	req.Slug = "hello-world"
	_, path2, err := Generate(req, testNow)
	require.NoError(t, err)
	assert.Equal(t, path, path2)
}

func TestGenerateMarkupCaseInsensitive(t *testing.T) {
	req := Request{ContentType: "page", Title: "T", Markup: "MD", Path: "content"}
	_, path, err := Generate(req, testNow)
	require.NoError(t, err)
	assert.Equal(t, "content/t.md", path)
}

func TestGenerateRejectsUnknownMarkup(t *testing.T) {
	req := Request{ContentType: "article", Title: "T", Markup: "txt", Path: "content"}
	_, _, err := Generate(req, testNow)
	require.Error(t, err)
	assert.ErrorContains(t, err, "txt is not a valid markup format")
}
