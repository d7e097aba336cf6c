// Package writer persists generated content and confirms the path.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

type Writer struct {
	fs  afero.Fs
	out io.Writer
}

func New(fs afero.Fs, out io.Writer) *Writer {
	return &Writer{fs: fs, out: out}
}

// Save writes content to path, creating or truncating the file. The
// target directory must already exist; filesystem errors propagate
// untouched.
func (w *Writer) Save(content, path string) error {
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w.out, "Article file created at %s\n", path)
	return nil
}
