// Package persist reads and writes JSON values under fixed keys of a kv.Store.
// It never returns an error: a value that cannot be read comes back as the
// caller's empty default, and a value that cannot be written is dropped.
package persist

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/yamiarchive/yami/internal/kv"
)

const (
	KeyBookmarks = "bookmarks"
	KeyBelief    = "belief"
)

type Adapter struct {
	store   kv.Store
	log     *slog.Logger
	lastErr error
}

func New(store kv.Store, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Adapter{store: store, log: log}
}

// Load decodes the value stored under key into a fresh T. A missing key or
// any read or decode failure yields empty.
func Load[T any](a *Adapter, key string, empty T) T {
	raw, err := a.store.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			a.log.Warn("persist.load_failed", "key", key, "err", err)
		}
		return empty
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.log.Warn("persist.decode_failed", "key", key, "err", err, "bytes", len(raw))
		return empty
	}
	return v
}

// Save replaces the value under key with the JSON encoding of v. Failures
// are logged and remembered for LastError, never returned.
func (a *Adapter) Save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		a.fail(key, err)
		return
	}
	if err := a.store.Set(key, raw); err != nil {
		a.fail(key, err)
		return
	}
	a.lastErr = nil
	a.log.Debug("persist.saved", "key", key, "bytes", len(raw))
}

// LastError reports the failure of the most recent Save, if any.
func (a *Adapter) LastError() error {
	return a.lastErr
}

func (a *Adapter) fail(key string, err error) {
	a.lastErr = err
	a.log.Error("persist.save_failed", "key", key, "err", err)
}
