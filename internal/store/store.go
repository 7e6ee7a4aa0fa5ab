// Package store persists each record collection as a single pretty-printed
// JSON document on disk. Every read loads the whole file and every write
// replaces it; all mutations of a collection are serialized through one
// writer lock so concurrent requests cannot lose each other's updates.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Collection[T any] struct {
	mu   sync.Mutex
	path string
}

func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name+".json")}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Exists reports whether the backing file has been created yet.
func (c *Collection[T]) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Load returns the full decoded collection. A missing file decodes as empty.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save replaces the whole document with items.
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(items)
}

// Update runs fn over the decoded collection and writes its result back.
// fn executes inside the collection's writer critical section, so
// read-count-append sequences are safe against concurrent callers.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	data = append(data, '\n')

	// Write-then-rename so a fault mid-write never truncates the document.
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
