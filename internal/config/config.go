package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/processwire-skills/linkskills/internal/branding"
	"github.com/processwire-skills/linkskills/internal/integrations"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	// DefaultTarget is the canonical skills directory, relative to the repository root.
	DefaultTarget = ".agents/skills"
	// DefaultLinkName is the entry created inside each container.
	DefaultLinkName = "skills"

	fileType = "yaml"
)

// Config is the resolved link configuration.
type Config struct {
	Requires   string   `mapstructure:"requires" yaml:"requires,omitempty"`
	Target     string   `mapstructure:"target" yaml:"target"`
	LinkName   string   `mapstructure:"link_name" yaml:"link_name"`
	Containers []string `mapstructure:"containers" yaml:"containers"`

	// Source is the file the config was read from; empty when no file was used.
	Source string `mapstructure:"-" yaml:"-"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Target:     DefaultTarget,
		LinkName:   DefaultLinkName,
		Containers: integrations.DefaultContainers(),
	}
}

// Path returns the project config file path for a repository root.
func Path(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load resolves the configuration for root. When file is empty the project
// file in root is used if present; an explicitly named file must exist. A
// relative file is resolved against root, not the working directory.
func Load(root, file string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigType(fileType)
	v.SetDefault("target", def.Target)
	v.SetDefault("link_name", def.LinkName)
	v.SetDefault("containers", def.Containers)
	v.SetDefault("requires", "")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	path := file
	switch {
	case path == "":
		path = Path(root)
	case !filepath.IsAbs(path):
		path = filepath.Join(root, path)
	}

	source := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		result, vErr := ValidateSchema(data)
		if vErr != nil {
			return nil, fmt.Errorf("validating %s: %w", path, vErr)
		}
		if !result.Valid {
			return nil, &SchemaError{Path: path, Issues: result.Issues}
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		source = path
	case errors.Is(err, os.ErrNotExist) && file == "":
		// No project file; defaults and environment only.
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the paths in the config are usable: relative, inside
// the repository, and free of duplicates.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := checkRelative("target", c.Target); err != nil {
		result = multierror.Append(result, err)
	}

	switch {
	case c.LinkName == "":
		result = multierror.Append(result, errors.New("link_name must not be empty"))
	case c.LinkName == "." || c.LinkName == ".." || strings.ContainsAny(c.LinkName, `/\`):
		result = multierror.Append(result, fmt.Errorf("link_name %q must be a single path element", c.LinkName))
	}

	if len(c.Containers) == 0 {
		result = multierror.Append(result, errors.New("at least one container is required"))
	}

	target := filepath.Clean(filepath.FromSlash(c.Target))
	seen := make(map[string]bool, len(c.Containers))
	for _, container := range c.Containers {
		if err := checkRelative("container", container); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		clean := filepath.Clean(filepath.FromSlash(container))
		if seen[clean] {
			result = multierror.Append(result, fmt.Errorf("container %q is listed more than once", container))
			continue
		}
		seen[clean] = true

		if within(filepath.Join(clean, c.LinkName), target) {
			result = multierror.Append(result, fmt.Errorf("container %q would link target %q to itself", container, c.Target))
			continue
		}
		if within(target, clean) {
			result = multierror.Append(result, fmt.Errorf("container %q is inside the target %q", container, c.Target))
		}
	}

	return result.ErrorOrNil()
}

// within reports whether p is dir or lies under it. Both must be clean.
func within(dir, p string) bool {
	return p == dir || strings.HasPrefix(p, dir+string(filepath.Separator))
}

func checkRelative(field, p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("%s %q must be relative to the repository root", field, p)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	if clean == "." {
		return fmt.Errorf("%s %q must not be the repository root", field, p)
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%s %q escapes the repository root", field, p)
	}
	return nil
}

// Write marshals cfg to path.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Init writes the default configuration to the project file in root and
// returns its path. An existing file is only replaced when force is set.
func Init(root string, force bool) (string, error) {
	path := Path(root)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := Write(path, Default()); err != nil {
		return "", err
	}
	return path, nil
}
