package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the names of the supported theme file formats.
var Formats = []string{"yaml", "toml", "json"}

// Load returns the theme in a file.
// The format is chosen by the file extension:
// .yaml or .yml, .toml, or .json.
func Load(path string) (*Theme, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "yml" {
		format = "yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	th, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return th, nil
}

// Decode returns the theme read from r in the given format,
// which is one of Formats.
// Unknown fields are an error.
func Decode(r io.Reader, format string) (*Theme, error) {
	var th Theme
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&th); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&th); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&th); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%q (%w)", format, ErrUnknownFormat)
	}
	return &th, nil
}

// Encode writes the theme to w in the given format,
// which is one of Formats.
func (th *Theme) Encode(w io.Writer, format string) error {
	var buf bytes.Buffer
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(th); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(th); err != nil {
			return err
		}
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(th); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%q (%w)", format, ErrUnknownFormat)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
