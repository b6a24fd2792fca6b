package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/robofactory/internal/input/key"
)

// ErrUnsupportedFormat is returned for binding files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported bindings format")

// Format identifies a bindings file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadError reports a bindings entry that could not be parsed.
type LoadError struct {
	Path  string
	Index int
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: binding %d: %v", e.Path, e.Index, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile loads a default bindings list from a TOML, YAML or JSON file.
func LoadFile(path string) ([]Default, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	return load(path, f, format)
}

// Load reads a default bindings list in the given format.
func Load(r io.Reader, format Format) ([]Default, error) {
	return load("<reader>", r, format)
}

func load(source string, r io.Reader, format Format) ([]Default, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	var file bindingsFile
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&file); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	defaults := make([]Default, 0, len(file.Bindings))
	for i, b := range file.Bindings {
		d, err := b.parse()
		if err != nil {
			return nil, &LoadError{Path: source, Index: i, Err: err}
		}
		defaults = append(defaults, d)
	}
	return defaults, nil
}

// Save writes defaults in the given format. The output is accepted by Load.
func Save(w io.Writer, format Format, defaults []Default) error {
	file := bindingsFile{Bindings: make([]bindingConfig, 0, len(defaults))}
	for _, d := range defaults {
		edge, err := d.Chord.Edge.MarshalText()
		if err != nil {
			return fmt.Errorf("%s: %w", d.Action, err)
		}
		file.Bindings = append(file.Bindings, bindingConfig{
			Action: d.Action,
			Keys:   d.Chord.Keys(),
			Edge:   string(edge),
		})
	}

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(file)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// bindingsFile is the on-disk shape shared by every format.
type bindingsFile struct {
	Bindings []bindingConfig `toml:"bindings" yaml:"bindings" json:"bindings"`
}

type bindingConfig struct {
	Action string `toml:"action" yaml:"action" json:"action"`
	Keys   string `toml:"keys" yaml:"keys" json:"keys"`
	Edge   string `toml:"edge" yaml:"edge" json:"edge,omitempty"`
}

func (b bindingConfig) parse() (Default, error) {
	if strings.TrimSpace(b.Action) == "" {
		return Default{}, errors.New("empty action")
	}
	edge := b.Edge
	if strings.TrimSpace(edge) == "" {
		edge = "press"
	}
	chord, err := key.ParseChord(b.Keys, edge)
	if err != nil {
		return Default{}, fmt.Errorf("%s: %w", b.Action, err)
	}
	return Default{Chord: chord, Action: b.Action}, nil
}
