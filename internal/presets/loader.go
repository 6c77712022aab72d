package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load reads and strictly unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return Decode[T](filename, content)
}

// Decode strictly unmarshals JSON content. Unknown fields are rejected so a
// misspelt parameter fails loudly instead of silently falling back to zero.
func Decode[T any](name string, content []byte) (T, error) {
	var result T

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for generation to work.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
