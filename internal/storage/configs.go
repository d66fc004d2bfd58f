package storage

import (
	"context"

	"azadinet-bot/internal/stories/catalog"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	fieldName   = "name"
	fieldConfig = "config"
)

var catalogCodec = codec[[]catalog.ConfigEntry]{
	decode: decodeCatalog,
	encode: encodeCatalog,
}

// decodeCatalog reads {"<id>": {"name": ..., "config": ...}, ...} keeping the
// key order of the file.
func decodeCatalog(d *jx.Decoder) ([]catalog.ConfigEntry, error) {
	if d.Next() != jx.Object {
		return nil, errors.Errorf("configs: unexpected %s", d.Next())
	}

	entries := []catalog.ConfigEntry{}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		entry := catalog.ConfigEntry{ID: string(key)}

		if d.Next() != jx.Object {
			return errors.Errorf("config %q: unexpected %s", entry.ID, d.Next())
		}
		err := d.ObjBytes(func(d *jx.Decoder, field []byte) error {
			var err error
			switch string(field) {
			case fieldName:
				entry.Name, err = d.Str()
			case fieldConfig:
				entry.URI, err = d.Str()
			default:
				err = d.Skip()
			}
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "config %q", entry.ID)
		}

		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func encodeCatalog(e *jx.Encoder, entries []catalog.ConfigEntry) {
	e.ObjStart()
	for _, entry := range entries {
		e.FieldStart(entry.ID)
		e.ObjStart()
		e.FieldStart(fieldName)
		e.Str(entry.Name)
		e.FieldStart(fieldConfig)
		e.Str(entry.URI)
		e.ObjEnd()
	}
	e.ObjEnd()
}

func (s *storageImpl) LoadCatalog(_ context.Context) ([]catalog.ConfigEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadFile(s.configsPath, s.defaultCatalog, catalogCodec, s.logger), nil
}

func (s *storageImpl) SaveCatalog(_ context.Context, entries []catalog.ConfigEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := saveFile(s.configsPath, entries, catalogCodec); err != nil {
		return errors.Wrap(err, "save configs")
	}
	return nil
}
