package storage

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const indent = 2

// codec describes how a value is laid out in one JSON file.
type codec[T any] struct {
	decode func(d *jx.Decoder) (T, error)
	encode func(e *jx.Encoder, v T)
}

// loadFile reads path with c. A missing file is created from def; an
// unreadable or malformed file yields def without an error, since the
// store is expected to self-heal on the next save.
func loadFile[T any](path string, def func() T, c codec[T], logger *slog.Logger) T {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := saveFile(path, def(), c); err != nil {
			logger.Warn("Failed to write default store file", slog.String("path", path), slog.Any("error", err))
		}
		return def()
	}
	if err != nil {
		logger.Warn("Store file unreadable, using defaults", slog.String("path", path), slog.Any("error", err))
		return def()
	}

	v, err := decodeAll(data, c)
	if err != nil {
		logger.Warn("Store file corrupt, using defaults", slog.String("path", path), slog.Any("error", err))
		return def()
	}
	return v
}

func decodeAll[T any](data []byte, c codec[T]) (T, error) {
	var zero T

	d := jx.DecodeBytes(bytes.TrimSpace(data))
	v, err := c.decode(d)
	if err != nil {
		return zero, errors.Wrap(err, "decode")
	}
	if d.Next() != jx.Invalid {
		return zero, errors.New("trailing data after value")
	}
	return v, nil
}

// saveFile writes v to a temporary file next to path and renames it over
// path, so readers never observe a half-written file.
func saveFile[T any](path string, v T, c codec[T]) error {
	e := &jx.Encoder{}
	e.SetIdent(indent)
	c.encode(e, v)

	data := append(e.Bytes(), '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create store dir")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrap(err, "chmod temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "replace store file")
	}
	return nil
}
