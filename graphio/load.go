package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isomorph/core"
)

// Format selects the document syntax.
type Format string

const (
	// FormatAuto tries YAML first, then JSON.
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension. Unknown extensions
// yield FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// ParseFormat maps "yaml", "yml", "json" or "" (auto) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("ParseFormat: %q: %w", name, ErrUnknownFormat)
	}
}

// Parse decodes a document from data.
func Parse(data []byte, format Format) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("Parse: json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("Parse: yaml: %w", err)
		}
	case FormatAuto:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			doc = Document{}
			if jerr := json.Unmarshal(data, &doc); jerr != nil {
				return nil, fmt.Errorf("Parse: tried yaml and json: %w", jerr)
			}
		}
	default:
		return nil, fmt.Errorf("Parse: %q: %w", string(format), ErrUnknownFormat)
	}

	return &doc, nil
}

// Load reads and parses the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return doc, nil
}

// LoadGraph loads the document at path and builds its graph.
func LoadGraph(path string) (*core.Graph, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("LoadGraph: %s: %w", path, err)
	}

	return g, nil
}

// Marshal encodes doc in the given format; FormatAuto encodes YAML.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML, FormatAuto:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("Marshal: %q: %w", string(format), ErrUnknownFormat)
	}
}
