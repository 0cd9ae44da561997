package svgo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NestorMonroy/svgo/internal/normalize"
)

// Options selects which removals the normalizer performs.
type Options struct {
	// UnknownContent prunes child elements the parent's content model does not permit.
	UnknownContent bool `yaml:"unknownContent"`
	// UnknownAttrs removes attributes the element does not know.
	UnknownAttrs bool `yaml:"unknownAttrs"`
	// DefaultAttrs removes attributes equal to their default value.
	DefaultAttrs bool `yaml:"defaultAttrs"`
	// UselessOverrides removes inheritable attributes equal to the inherited value.
	UselessOverrides bool `yaml:"uselessOverrides"`
	// KeepDataAttrs always keeps data-* attributes.
	KeepDataAttrs bool `yaml:"keepDataAttrs"`
	// KeepAriaAttrs always keeps aria-* attributes.
	KeepAriaAttrs bool `yaml:"keepAriaAttrs"`
	// KeepRoleAttr always keeps the role attribute.
	KeepRoleAttr bool `yaml:"keepRoleAttr"`
}

// DefaultOptions enables every removal and keeps data-* and aria-* attributes.
func DefaultOptions() Options {
	return Options{
		UnknownContent:   true,
		UnknownAttrs:     true,
		DefaultAttrs:     true,
		UselessOverrides: true,
		KeepDataAttrs:    true,
		KeepAriaAttrs:    true,
		KeepRoleAttr:     false,
	}
}

// LoadOptions reads options from YAML. Fields not present keep their
// DefaultOptions value; unknown fields are rejected.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if r == nil {
		return opts, nil
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultOptions(), nil
		}
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

// LoadOptionsFile reads options from a YAML file.
func LoadOptionsFile(path string) (opts Options, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open options file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close options file %s: %w", path, closeErr)
		}
	}()

	opts, err = LoadOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

func (o Options) toConfig() normalize.Config {
	return normalize.Config{
		UnknownContent:   o.UnknownContent,
		UnknownAttrs:     o.UnknownAttrs,
		DefaultAttrs:     o.DefaultAttrs,
		UselessOverrides: o.UselessOverrides,
		KeepDataAttrs:    o.KeepDataAttrs,
		KeepAriaAttrs:    o.KeepAriaAttrs,
		KeepRoleAttr:     o.KeepRoleAttr,
	}
}
