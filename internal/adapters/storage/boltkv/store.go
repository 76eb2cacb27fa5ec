// Package boltkv implements the durable key-value port on top of bbolt.
package boltkv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

const defaultBucket = "kv"

// Config holds bbolt store settings.
type Config struct {
	// Path is the database file. Parent directories are created.
	Path string

	// Bucket holds every key. Defaults to "kv".
	Bucket string

	// OpenTimeout bounds waiting for the file lock held by another process.
	OpenTimeout time.Duration
}

// Store is a single-bucket bbolt key-value store.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens or creates the database file and its bucket.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("boltkv: path is required")
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = defaultBucket
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating bucket %q: %w", bucket, err)
	}

	return &Store{db: db, bucket: []byte(bucket)}, nil
}

// Get returns a copy of the stored value or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}

	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}

		return nil
	})
	if err != nil {
		return nil, domain.NewStorageError("get", key, err)
	}

	if data == nil {
		return nil, domain.NewNotFoundError("storage key", key)
	}

	return data, nil
}

// Put writes value under key in a single transaction.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("put", key, err)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return domain.NewStorageError("put", key, err)
	}

	return nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker by opening a read transaction.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return fmt.Errorf("bucket %q missing", s.bucket)
		}

		return nil
	})
}
