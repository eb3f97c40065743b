/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package store

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/skaldic/seidr/pkg/wire"
)

// ErrNotFound is returned when no record exists under the requested key.
var ErrNotFound = errors.New("store: record not found")

// RecordStore persists wire-encoded records in a pebble database. Every
// value is framed as CompactSize(payload length) || payload so a reader can
// verify the stored bytes are exactly one record, with lengths bounded by
// the same ceiling the codec enforces.
type RecordStore struct {
	db      *pebble.DB
	maxSize uint64
}

// Open opens (or creates) a record store at path. maxSize is the CompactSize
// ceiling applied to every record written to or read from the store; pass 0
// to use wire.DefaultMaxSize.
func Open(path string, maxSize uint64) (*RecordStore, error) {
	if maxSize == 0 {
		maxSize = wire.DefaultMaxSize
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open record store at %q", path)
	}
	return &RecordStore{db: db, maxSize: maxSize}, nil
}

func (s *RecordStore) encode(rec wire.Serializable) ([]byte, error) {
	size, err := wire.SizeOfLimit(rec, s.maxSize)
	if err != nil {
		return nil, err
	}
	b := wire.NewBufferLimit(s.maxSize)
	if err := wire.WriteCompactSize(b, size); err != nil {
		return nil, err
	}
	if err := rec.Serialize(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (s *RecordStore) decode(data []byte, rec wire.Serializable) error {
	b := wire.NewBufferBytesLimit(data, s.maxSize)
	size, err := wire.ReadCompactSize(b)
	if err != nil {
		return err
	}
	if size != uint64(b.Remaining()) {
		return errors.Wrapf(wire.ErrTypeMismatch,
			"stored frame declares %d payload bytes, have %d", size, b.Remaining())
	}
	if err := rec.Deserialize(b); err != nil {
		return err
	}
	if b.Remaining() != 0 {
		return errors.Wrapf(wire.ErrTypeMismatch,
			"%d trailing bytes after record", b.Remaining())
	}
	return nil
}

// Put stores rec under key, replacing any existing record.
func (s *RecordStore) Put(key []byte, rec wire.Serializable) error {
	data, err := s.encode(rec)
	if err != nil {
		return err
	}
	if err := s.db.Set(key, data, pebble.NoSync); err != nil {
		return errors.Wrap(err, "put record")
	}
	return nil
}

// Get loads the record stored under key into rec.
func (s *RecordStore) Get(key []byte, rec wire.Serializable) error {
	data, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "get record")
	}
	defer closer.Close()

	return s.decode(data, rec)
}

// Append stores rec under a freshly generated KSUID key and returns the key.
// KSUIDs sort by creation time, so appended records iterate in insertion
// order.
func (s *RecordStore) Append(rec wire.Serializable) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.Put(id.Bytes(), rec); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Delete removes the record stored under key. Deleting a missing key is not
// an error.
func (s *RecordStore) Delete(key []byte) error {
	if err := s.db.Delete(key, pebble.NoSync); err != nil {
		return errors.Wrap(err, "delete record")
	}
	return nil
}

// Close flushes and closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}
