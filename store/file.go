package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/llmconf/settings"
)

// codec converts snapshots to and from one file format.
type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var codecs = map[string]codec{
	".json": {
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
		unmarshal: json.Unmarshal,
	},
	".yaml": {marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	".yml":  {marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	".toml": {
		marshal: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		unmarshal: toml.Unmarshal,
	},
}

// FileStore keeps the snapshot in a single file. The extension picks the
// format: .json, .yaml, .yml or .toml.
type FileStore struct {
	path  string
	codec codec
}

// NewFileStore creates a store backed by path. The file need not exist.
func NewFileStore(path string) (*FileStore, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &FileStore{path: path, codec: c}, nil
}

// DefaultPath returns the settings file under the user config directory,
// falling back to the working directory when none is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "llmconf.json"
	}
	return filepath.Join(dir, "llmconf", "settings.json")
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the file. Fields missing from the file keep their
// shipped defaults.
func (s *FileStore) Load(_ context.Context) (*settings.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	st := settings.DefaultState()
	if err := s.codec.unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	return st, nil
}

// Save encodes st and replaces the file atomically. The file holds API keys
// and is written owner-readable only.
func (s *FileStore) Save(_ context.Context, st *settings.State) error {
	data, err := s.codec.marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
