// Package config loads MultiStateView options from multistate.yaml.
//
// Example:
//
//	schema: v1
//	viewState: loading
//	animateViewChanges: true
//	fadeDuration: 250ms
//	fadeCurve: accelerateDecelerate
//	loadingView: spinner
//	emptyView: empty
//	errorView: error
//
// Every field is optional. Template references are resolved through the
// view.Inflater passed to Options.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/multistate/pkg/animation"
	"github.com/go-drift/multistate/pkg/errors"
	"github.com/go-drift/multistate/pkg/multistate"
	"github.com/go-drift/multistate/pkg/view"
)

// FileName is the file LoadOptional looks for.
const FileName = "multistate.yaml"

// SchemaVersion is the schema this package writes and the major it accepts.
const SchemaVersion = "v1"

// Config represents the optional multistate.yaml configuration.
type Config struct {
	Schema             string               `yaml:"schema,omitempty"`
	Name               string               `yaml:"name,omitempty"`
	ViewState          multistate.ViewState `yaml:"viewState"`
	AnimateViewChanges bool                 `yaml:"animateViewChanges"`
	FadeDuration       time.Duration        `yaml:"fadeDuration,omitempty"`
	FadeCurve          string               `yaml:"fadeCurve,omitempty"`
	LoadingView        string               `yaml:"loadingView,omitempty"`
	EmptyView          string               `yaml:"emptyView,omitempty"`
	ErrorView          string               `yaml:"errorView,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Schema:       SchemaVersion,
		ViewState:    multistate.StateContent,
		FadeDuration: multistate.DefaultFadeDuration,
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Report(errors.Config("config.Load", fmt.Errorf("failed to read %s: %w", path, err)))
	}
	return Parse(data)
}

// LoadOptional reads multistate.yaml from dir if present. A missing file
// yields Default().
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates YAML. Unset fields keep their defaults.
func Parse(data []byte) (*Config, error) {
	const op = "config.Parse"
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Report(errors.Config(op, fmt.Errorf("failed to parse %s: %w", FileName, err)))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the schema version and value ranges.
func (c *Config) Validate() error {
	const op = "config.Validate"
	schema := strings.TrimSpace(c.Schema)
	if schema == "" {
		schema = SchemaVersion
	}
	if !strings.HasPrefix(schema, "v") {
		schema = "v" + schema
	}
	if !semver.IsValid(schema) {
		return errors.Report(errors.Config(op, fmt.Errorf("invalid schema version %q", c.Schema)))
	}
	if semver.Major(schema) != SchemaVersion {
		return errors.Report(errors.Config(op, fmt.Errorf("unsupported schema %s (want %s)", schema, SchemaVersion)))
	}
	c.Schema = schema

	if c.ViewState != multistate.StateUnknown && !c.ViewState.IsSlot() {
		return errors.Report(errors.Config(op, fmt.Errorf("unknown view state %d", int(c.ViewState))))
	}
	if c.FadeDuration < 0 {
		return errors.Report(errors.Config(op, fmt.Errorf("negative fadeDuration %v", c.FadeDuration)))
	}
	if c.FadeCurve != "" {
		if _, ok := animation.CurveByName(c.FadeCurve); !ok {
			return errors.Report(errors.Config(op, fmt.Errorf("unknown fadeCurve %q (want one of %s)",
				c.FadeCurve, strings.Join(animation.CurveNames(), ", "))))
		}
	}
	return nil
}

// Options converts the configuration into multistate.Options. inflater
// resolves the template references and may be nil when none are set.
func (c *Config) Options(inflater view.Inflater) (multistate.Options, error) {
	if err := c.Validate(); err != nil {
		return multistate.Options{}, err
	}
	refs := []string{c.LoadingView, c.EmptyView, c.ErrorView}
	if inflater == nil {
		for _, ref := range refs {
			if strings.TrimSpace(ref) != "" {
				return multistate.Options{}, errors.Report(errors.Config("config.Options",
					fmt.Errorf("template %q set but no inflater given", ref)))
			}
		}
	}
	curve, _ := animation.CurveByName(c.FadeCurve)
	return multistate.Options{
		Name:               strings.TrimSpace(c.Name),
		LoadingTemplate:    strings.TrimSpace(c.LoadingView),
		EmptyTemplate:      strings.TrimSpace(c.EmptyView),
		ErrorTemplate:      strings.TrimSpace(c.ErrorView),
		ViewState:          c.ViewState,
		AnimateViewChanges: c.AnimateViewChanges,
		FadeDuration:       c.FadeDuration,
		FadeCurve:          curve,
		Inflater:           inflater,
	}, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Config("config.Marshal", err)
	}
	return data, nil
}
