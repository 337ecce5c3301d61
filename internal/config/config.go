package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

const fileType = "yaml"

//go:embed defaults.yaml
var defaultsYAML []byte

// Conventions controls generated file names and guard tokens.
type Conventions struct {
	HeaderExt   string `mapstructure:"header_ext" json:"header_ext"`
	SourceExt   string `mapstructure:"source_ext" json:"source_ext"`
	GuardSuffix string `mapstructure:"guard_suffix" json:"guard_suffix"`
}

// Load returns the embedded default conventions.
func Load() (Conventions, error) {
	return LoadFrom(nil)
}

// LoadFrom reads a YAML document over the embedded defaults. A nil reader
// yields the defaults unchanged. The result is validated before it is returned.
func LoadFrom(r io.Reader) (Conventions, error) {
	v := viper.New()
	v.SetConfigType(fileType)

	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return Conventions{}, fmt.Errorf("reading default conventions: %w", err)
	}
	if r != nil {
		if err := v.MergeConfig(r); err != nil {
			return Conventions{}, fmt.Errorf("reading conventions: %w", err)
		}
	}

	var c Conventions
	if err := v.Unmarshal(&c); err != nil {
		return Conventions{}, fmt.Errorf("decoding conventions: %w", err)
	}
	if err := Validate(c); err != nil {
		return Conventions{}, err
	}
	return c, nil
}
