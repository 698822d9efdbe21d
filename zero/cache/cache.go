// Package cache implements A4: an optional per-server cache directory
// backed by an embedded LevelDB store, CRC32-validated on read so a
// truncated or corrupted value never gets handed back silently.
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"path"

	"github.com/df-mc/goleveldb/leveldb"
)

// ErrCorrupt is returned by Get when the stored CRC32 doesn't match the
// stored bytes.
var ErrCorrupt = errors.New("cache: stored value is corrupt")

// Store wraps a LevelDB database rooted at a cache directory. Keys are
// conventionally "zones/<server>/<filename>"; Join builds one.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a LevelDB database at dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Join builds a cache key of the form "zones/<server>/<filename>".
func Join(server, filename string) string {
	return path.Join("zones", server, filename)
}

// Put stores data under key alongside its CRC32 checksum, both encoded in
// a single record so Get can validate on read without a second lookup.
func (s *Store) Put(key string, data []byte) error {
	record := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(record, crc32.ChecksumIEEE(data))
	copy(record[4:], data)
	return s.db.Put([]byte(key), record, nil)
}

// Get retrieves the bytes stored under key, recomputing the CRC32 and
// returning ErrCorrupt on a mismatch. leveldb.ErrNotFound is returned
// unwrapped so callers can check it with errors.Is.
func (s *Store) Get(key string) ([]byte, error) {
	record, err := s.db.Get([]byte(key), nil)
	if err != nil {
		return nil, err
	}
	if len(record) < 4 {
		return nil, ErrCorrupt
	}
	want := binary.BigEndian.Uint32(record[:4])
	data := record[4:]
	if crc32.ChecksumIEEE(data) != want {
		return nil, ErrCorrupt
	}
	return data, nil
}

// Delete removes key, if present.
func (s *Store) Delete(key string) error {
	return s.db.Delete([]byte(key), nil)
}
