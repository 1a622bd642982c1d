package brand

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/amadad/phantom/pkg/errors"
)

// Load reads a brand file and returns the parsed, defaulted, validated brand.
// The format is selected by file extension: .yaml/.yml, .json, or .toml.
func Load(path string) (*Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeBrandNotFound, err, "brand file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidBrand, err, "read brand file %s", path)
	}
	b, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if b.ID == "" {
		// Derive a stable id from the file name when the brand omits one.
		b.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return b, nil
}

// Parse decodes brand data in the format indicated by ext (".yaml", ".yml",
// ".json", or ".toml"), applies defaults, and validates the result.
func Parse(data []byte, ext string) (*Brand, error) {
	var b Brand
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBrand, err, "parse YAML brand")
		}
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBrand, err, "parse JSON brand")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBrand, err, "parse TOML brand")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidBrand, "unsupported brand file extension %q (use .yaml, .json, or .toml)", ext)
	}

	b.Visual.ApplyDefaults()
	if err := b.Visual.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
