package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/calebcase/oops"
	"github.com/tidwall/jsonc"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/ryann66/hex/radix"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// EnvVar names the environment variable holding the config file path.
const EnvVar = "HEX_CONFIG"

// File is the content of a config file. Nil fields were not set.
type File struct {
	Read      *string `yaml:"read" json:"read"`
	Write     *string `yaml:"write" json:"write"`
	Lower     *bool   `yaml:"lower" json:"lower"`
	Signed    *bool   `yaml:"signed" json:"signed"`
	Prefix    *bool   `yaml:"prefix" json:"prefix"`
	Width     *uint   `yaml:"width" json:"width"`
	Round     *bool   `yaml:"round" json:"round"`
	Group     *bool   `yaml:"group" json:"group"`
	Separator *string `yaml:"separator" json:"separator"`
}

// Path returns flag if it is set, otherwise the value of EnvVar. An empty
// result means no config file.
func Path(flag string) string {
	if flag != "" {
		return flag
	}

	return os.Getenv(EnvVar)
}

// Load reads and parses the file at path.
func Load(path string) (f *File, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Trace(err)
	}

	f, err = Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, Error.New("%s: %w", path, errs.Unwrap(err))
	}

	return f, nil
}

// Parse parses data in the format named by the file extension ext.
func Parse(ext string, data []byte) (f *File, err error) {
	f = &File{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, f)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), f)
	default:
		return nil, Error.New("unsupported config format %q", ext)
	}

	if err != nil {
		return nil, Error.Wrap(err)
	}

	return f, nil
}

// Apply overwrites the fields of schema that are set in f.
func (f *File) Apply(schema *radix.Schema) (err error) {
	defer Error.WrapP(&err)

	if f.Read != nil {
		schema.Read, err = radix.ParseReadMode(*f.Read)
		if err != nil {
			return err
		}
	}

	if f.Write != nil {
		schema.Write.Base, err = radix.ParseBase(*f.Write)
		if err != nil {
			return err
		}
	}

	if f.Lower != nil {
		schema.Write.Upper = !*f.Lower
	}

	if f.Signed != nil {
		schema.Signed = *f.Signed
	}

	if f.Prefix != nil {
		schema.Prefix = *f.Prefix
	}

	round := f.Round != nil && *f.Round
	fixed := f.Width != nil && *f.Width > 0

	switch {
	case round && fixed:
		return Error.New("width and round are mutually exclusive")
	case fixed:
		schema.Width = radix.Fixed(int(*f.Width))
	case round:
		schema.Width = radix.RoundUp()
	case f.Width != nil || f.Round != nil:
		schema.Width = radix.Unfixed()
	}

	if f.Group != nil {
		switch {
		case !*f.Group:
			schema.Separator = radix.NoSeparator()
		case f.Separator != nil && *f.Separator != "":
			schema.Separator = radix.Literal(*f.Separator)
		default:
			schema.Separator = radix.DefaultSeparator()
		}
	} else if f.Separator != nil && *f.Separator != "" {
		schema.Separator = radix.Literal(*f.Separator)
	}

	return nil
}
