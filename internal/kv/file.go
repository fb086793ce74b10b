package kv

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// File keeps every key in a single JSON document. Each Set rewrites the
// document through a temp file and rename.
type File struct {
	path   string
	values map[string]json.RawMessage
}

func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &OpError{Op: "kv.mkdir", Path: path, Err: err}
	}

	f := &File{path: path, values: map[string]json.RawMessage{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, &OpError{Op: "kv.read", Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		// A damaged document loses its keys; callers fall back to defaults.
		f.values = map[string]json.RawMessage{}
	}
	return f, nil
}

func (f *File) Get(key string) ([]byte, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (f *File) Set(key string, value []byte) error {
	next := make(map[string]json.RawMessage, len(f.values)+1)
	for k, v := range f.values {
		next[k] = v
	}
	// RawMessage must itself be valid JSON, so non-JSON values are stored as strings.
	if json.Valid(value) {
		next[key] = json.RawMessage(append([]byte(nil), value...))
	} else {
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return &OpError{Op: "kv.encode " + key, Path: f.path, Err: err}
		}
		next[key] = quoted
	}

	b, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return &OpError{Op: "kv.encode " + key, Path: f.path, Err: err}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &OpError{Op: "kv.write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return &OpError{Op: "kv.rename", Path: f.path, Err: err}
	}

	f.values = next
	return nil
}

func (f *File) Close() error { return nil }

func (f *File) Path() string {
	return f.path
}
