// Package boltstore is a durable mmr.NodeStore backed by go.etcd.io/bbolt.
package boltstore

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mmrforge/mmr"
)

var (
	nodesBucket = []byte("nodes")
	metaKey     = []byte("size")
)

// Store is a mmr.NodeStore backed by a single bbolt bucket. Each open log
// gets its own bucket name so a single database file can hold more than one
// MMR; position is the big-endian uint64 key, the raw digest is the value.
type Store struct {
	db     *bbolt.DB
	bucket []byte
}

// Open opens (creating if necessary) a bolt database at path and returns a
// Store using the named bucket. Close the returned Store when done; it owns
// the underlying *bbolt.DB.
func Open(path string, bucket string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}

	b := []byte(bucket)
	if len(b) == 0 {
		b = nodesBucket
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(b)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("boltstore: create bucket: %w", err)
	}

	return &Store{db: db, bucket: b}, nil
}

// Get implements mmr.NodeStore.
func (s *Store) Get(pos uint64) ([]byte, error) {
	var digest []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		v := bucket.Get(nodeKey(pos))
		if v == nil {
			return mmr.ErrNodeNotFound
		}
		digest = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return digest, nil
}

// Put implements mmr.NodeStore.
func (s *Store) Put(pos uint64, digest []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		return bucket.Put(nodeKey(pos), digest)
	})
}

// Size returns the node count last recorded with SetSize, or 0 if none has
// been recorded yet (a freshly created database).
func (s *Store) Size() (uint64, error) {
	var size uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		v := bucket.Get(metaKey)
		if v != nil {
			size = binary.BigEndian.Uint64(v)
		}
		return nil
	})
	return size, err
}

// SetSize records the MMR's current node count, so a later Open/Size call
// can resume the mmr.MMR at the right position (see mmr.WithSize).
func (s *Store) SetSize(size uint64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		v := make([]byte, 8)
		binary.BigEndian.PutUint64(v, size)
		return bucket.Put(metaKey, v)
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// nodeKey is the big-endian encoding of pos: bbolt iterates keys in
// lexical-byte order, so this keeps node keys in position order on disk.
func nodeKey(pos uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, pos)
	return key
}
