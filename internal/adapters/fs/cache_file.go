package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

const cacheFileName = "langlinks.json"

// CacheFileRepository implements ports.CacheRepository using a JSON file.
type CacheFileRepository struct {
	dir string
}

// NewCacheFileRepository creates a CacheFileRepository for the given directory.
func NewCacheFileRepository(dir string) *CacheFileRepository {
	return &CacheFileRepository{dir: dir}
}

// Load reads the cached entries from disk.
// Returns an empty map and nil error if no cache file exists.
func (r *CacheFileRepository) Load(ctx context.Context) (map[string][]string, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, err
	}

	entries := map[string][]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save writes entries atomically (temp file, then rename).
func (r *CacheFileRepository) Save(ctx context.Context, entries map[string][]string) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the cache file.
func (r *CacheFileRepository) Path() string {
	return filepath.Join(r.dir, cacheFileName)
}
