package storage

import (
	"context"
	"slices"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/samber/lo"
)

var usersCodec = codec[[]int64]{
	decode: decodeUsers,
	encode: encodeUsers,
}

// decodeUsers accepts the canonical array of ids as well as an object whose
// values are ids, which older exports produced.
func decodeUsers(d *jx.Decoder) ([]int64, error) {
	ids := []int64{}

	switch d.Next() {
	case jx.Array:
		err := d.Arr(func(d *jx.Decoder) error {
			id, err := decodeUserID(d)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		return ids, err
	case jx.Object:
		err := d.ObjBytes(func(d *jx.Decoder, _ []byte) error {
			id, err := decodeUserID(d)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		return ids, err
	default:
		return nil, errors.Errorf("users: unexpected %s", d.Next())
	}
}

func decodeUserID(d *jx.Decoder) (int64, error) {
	switch d.Next() {
	case jx.Number:
		return d.Int64()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "user id %q", s)
		}
		return id, nil
	default:
		return 0, errors.Errorf("user id: unexpected %s", d.Next())
	}
}

func encodeUsers(e *jx.Encoder, ids []int64) {
	e.ArrStart()
	for _, id := range ids {
		e.Int64(id)
	}
	e.ArrEnd()
}

func emptyUsers() []int64 {
	return []int64{}
}

func (s *storageImpl) ListUsers(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadFile(s.usersPath, emptyUsers, usersCodec, s.logger), nil
}

// SaveUsers stores ids sorted and without duplicates.
func (s *storageImpl) SaveUsers(_ context.Context, ids []int64) error {
	unique := lo.Uniq(ids)
	slices.Sort(unique)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := saveFile(s.usersPath, unique, usersCodec); err != nil {
		return errors.Wrap(err, "save users")
	}
	return nil
}
