// Package config loads plume.yaml from the working directory. The file
// is optional; every field falls back to a built-in default.
package config

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is looked up relative to the working directory.
const FileName = "plume.yaml"

// Starter is the config written by `plume init`.
const Starter = `# plume configuration
# Defaults used by "plume new"; flags always win over this file.

# author: Author Name
path: content
markup: md
`

type Config struct {
	Author string `yaml:"author"`
	Path   string `yaml:"path"`
	Markup string `yaml:"markup"`
}

// Default returns the built-in defaults: author from the OS user,
// content path "content", markup "md".
func Default() *Config {
	return &Config{
		Author: currentUser(),
		Path:   "content",
		Markup: "md",
	}
}

// Load reads FileName from fs and overlays it on the defaults. A
// missing file is not an error; a malformed one is.
func Load(fs afero.Fs) (*Config, error) {
	cfg := Default()
	data, err := afero.ReadFile(fs, FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if cfg.Author == "" {
		cfg.Author = currentUser()
	}
	if cfg.Path == "" {
		cfg.Path = "content"
	}
	if cfg.Markup == "" {
		cfg.Markup = "md"
	}
	return cfg, nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "unknown"
}
