package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk description of a wheel. YAML and JSON are both
// accepted since the YAML decoder reads JSON documents as well.
type File struct {
	Radius    int             `yaml:"radius,omitempty"`
	Slices    []SliceEntry    `yaml:"slices"`
	Locations []LocationEntry `yaml:"locations"`
}

// SliceEntry is one activity band in the layout file.
type SliceEntry struct {
	Label string `yaml:"label"`
	Start *int   `yaml:"start"`
	End   *int   `yaml:"end"`
}

// LocationEntry is one location marker in the layout file.
type LocationEntry struct {
	Name string `yaml:"name"`
	Hour *int   `yaml:"hour"`
}

// Parse decodes a layout document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &f, nil
}

// LoadFile reads and validates the layout at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := Validate(f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid layout %s: %w", path, errors.Join(errs...))
	}
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}
	return data, nil
}
