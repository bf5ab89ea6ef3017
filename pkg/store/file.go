// Package store persists canonical contract documents to disk and keeps
// an in-memory registry of live contracts keyed by contract ID.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/smart402/core/pkg/contracts"
)

// ErrNotFound is returned when a contract does not exist at the requested
// path or under the requested ID.
var ErrNotFound = errors.New("contract not found")

// SerializationError wraps an encode or decode failure with the file it
// concerned.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Supported persistence formats for Save.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Save writes the contract to path in the requested format ("yaml" or
// "json"). An empty format falls back to the file extension: .yaml and
// .yml produce YAML, everything else produces indented JSON. Parent
// directories are created as needed.
func Save(c contracts.UCLContract, path, format string) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatJSON
		}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML, "yml":
		data, err = contracts.EncodeYAML(c)
	case FormatJSON:
		data, err = contracts.EncodeJSON(c)
	default:
		return fmt.Errorf("save %s: unsupported format %q", path, format)
	}
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create contract directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write contract file: %w", err)
	}
	return nil
}

// Load reads a contract from path. The format is sniffed from the
// extension first; files without a known extension are tried as YAML,
// which also accepts JSON input.
func Load(path string) (contracts.UCLContract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return contracts.UCLContract{}, fmt.Errorf("load %s: %w", path, ErrNotFound)
		}
		return contracts.UCLContract{}, fmt.Errorf("read contract file: %w", err)
	}

	var c contracts.UCLContract
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err = contracts.DecodeJSON(data)
	default:
		c, err = contracts.DecodeYAML(data)
	}
	if err != nil {
		return contracts.UCLContract{}, &SerializationError{Path: path, Err: err}
	}
	return c, nil
}
