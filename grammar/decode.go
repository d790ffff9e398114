package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadFile() for unrecognized extensions.
var ErrUnknownFormat = errors.New("grammar: unknown file format")

// DecodeTOML decodes a TOML grammar. Unknown keys are an error.
func DecodeTOML(data []byte) (*Definition, error) {
	var d Definition

	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML grammar: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("failed to decode TOML grammar: unknown keys %s",
			strings.Join(keys, ", "))
	}

	return &d, nil
}

// DecodeYAML decodes a YAML grammar. Unknown keys are an error.
func DecodeYAML(data []byte) (*Definition, error) {
	var d Definition

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document is an empty grammar
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML grammar: %w", err)
	}

	return &d, nil
}

// DecodeHCL decodes an HCL grammar. The filename is only used in error
// messages.
func DecodeHCL(data []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL grammar %s: %w", filename, diags)
	}

	var d Definition
	if diags := gohcl.DecodeBody(file.Body, nil, &d); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL grammar %s: %w", filename, diags)
	}

	return &d, nil
}

// LoadFile reads a grammar from path. The format is chosen by extension:
// ".toml", ".yaml" or ".yml", ".hcl".
func LoadFile(path string) (*Definition, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".yaml", ".yml", ".hcl":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d *Definition
	switch ext {
	case ".toml":
		d, err = DecodeTOML(data)
	case ".yaml", ".yml":
		d, err = DecodeYAML(data)
	case ".hcl":
		d, err = DecodeHCL(data, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
