package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/youruser/jashn/internal/util"
)

// DiskStore writes one JSON file per key under a directory.
type DiskStore struct {
	dir string
	mu  sync.RWMutex
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, errors.New("disk store needs a data dir")
	}
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// path escapes the key so prefixed keys such as "story/x/" stay one file.
func (d *DiskStore) path(key string) string {
	return filepath.Join(d.dir, url.PathEscape(key)+".json")
}

func (d *DiskStore) Get(key string, v any) error {
	d.mu.RLock()
	b, err := os.ReadFile(d.path(key))
	d.mu.RUnlock()
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (d *DiskStore) Set(key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := util.WriteFileAtomic(d.path(key), b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (d *DiskStore) Delete(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := os.Remove(d.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
