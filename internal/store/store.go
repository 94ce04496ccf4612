// Package store persists collections as JSON array files, one file per
// collection. Every mutation rewrites the whole file; a per-collection
// mutex serializes read-modify-write cycles so concurrent mutations
// cannot lose each other's changes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var ErrCorrupt = errors.New("collection data is corrupt")

// Collection is a named JSON file holding an ordered sequence of records.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection returns a collection backed by <dir>/<name>.json.
// The file is not touched until EnsureExists or a write.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name+".json")}
}

// EnsureExists creates the collection file with the given seed records
// if it does not exist yet. A nil seed produces an empty collection.
func (c *Collection[T]) EnsureExists(seed []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if seed == nil {
		seed = []T{}
	}
	return c.write(seed)
}

// ReadAll returns every record in storage order. A missing file reads
// as an empty collection.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// WriteAll overwrites the collection with the given records.
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(records)
}

// Update runs fn over the current records and persists its result,
// holding the collection lock across the whole read-modify-write cycle.
// Returning an error from fn aborts without writing.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.path, err)
	}
	return records, nil
}

// write serializes to a temp file in the same directory and renames it
// over the collection file, so readers never observe a half-written file.
func (c *Collection[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}

// NextID returns max(ids)+1, or 1 for an empty set. Deleting the
// record with the highest id frees that id for the next create.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
