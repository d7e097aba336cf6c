package article

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/plume-ssg/plume/internal/header"
)

// dateLayout is minute precision; seconds never appear in front matter.
const dateLayout = "2006-01-02 15:04"

// Generate turns a validated request into file content and a target
// path. Pure computation: no clock reads, no I/O. Articles get a date
// stamped from now; pages carry none.
func Generate(req Request, now time.Time) (content, path string, err error) {
	source := req.Slug
	if source == "" {
		source = req.Title
	}
	slug := Slugify(source)

	var date string
	if req.ContentType == "article" {
		date = now.Format(dateLayout)
	}

	var categories []string
	if req.Category != "" {
		categories = []string{req.Category}
	}

	meta := header.Meta{
		Title:      req.Title,
		Date:       date,
		Author:     req.Author,
		Categories: categories,
		Tags:       SplitTags(req.Tags),
		Slug:       slug,
		Status:     req.Status,
	}

	markup := strings.ToLower(req.Markup)
	switch markup {
	case "md":
		content = header.Markdown(meta)
	case "rst":
		content = header.Rest(meta)
	default:
		return "", "", &InvalidMarkupError{Markup: req.Markup}
	}

	path = filepath.Join(req.Path, slug+"."+markup)
	return content, path, nil
}
