// Package branding provides the identity values shown by the CLI banner and
// version output.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Load decodes them once into an Identity, which is an
// immutable value handed to whatever renders banners.
package branding

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity describes the application. Copy it freely; nothing mutates it after Load.
type Identity struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	License   string `yaml:"license"`
	Copyright string `yaml:"copyright"`
	Author    string `yaml:"author"`
	Contact   string `yaml:"contact"`

	parsed *semver.Version
}

// Defaults returns the hard-coded identity used when the embedded file is empty.
func Defaults() Identity {
	return Identity{
		Name:      "classgen",
		Version:   "0.1.0",
		License:   "MIT",
		Copyright: "(C) Copyright 2018",
		Author:    "Richard Marks",
		Contact:   "ccpsceo@gmail.com",
	}
}

// Load decodes the embedded branding.yaml over Defaults.
func Load() (Identity, error) {
	return Parse(rawBranding)
}

// Parse decodes a branding document over Defaults and validates its version.
func Parse(data []byte) (Identity, error) {
	id := Defaults()
	if err := yaml.Unmarshal(data, &id); err != nil {
		return Identity{}, fmt.Errorf("parsing branding: %w", err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(id.Version, "v"))
	if err != nil {
		return Identity{}, fmt.Errorf("parsing branding version %q: %w", id.Version, err)
	}
	id.parsed = v
	return id, nil
}

// Tag returns the version as v<major>.<minor>.<patch>, dropping any
// pre-release or build metadata.
func (id Identity) Tag() string {
	v := id.parsed
	if v == nil {
		parsed, err := semver.NewVersion(strings.TrimPrefix(id.Version, "v"))
		if err != nil {
			return "v" + id.Version
		}
		v = parsed
	}
	return fmt.Sprintf("v%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Banner returns the two-line banner followed by a blank line.
func (id Identity) Banner() string {
	return fmt.Sprintf("%s %s\n%s license %s %s <%s>\n\n",
		id.Name, id.Tag(), id.License, id.Copyright, id.Author, id.Contact)
}

// Credits returns the single-line attribution printed before generation.
func (id Identity) Credits() string {
	return fmt.Sprintf("%s %s :: %s license %s, %s <%s>",
		id.Name, id.Tag(), id.License, id.Copyright, id.Author, id.Contact)
}
