package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Review opens the generated content in the user's editor and returns
// whatever was saved. Blocks until the editor exits.
func Review(content, ext string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}

	tmp, err := os.CreateTemp("", "plume_*."+ext)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	cmd := exec.Command(editor, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s: %w", editor, err)
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
