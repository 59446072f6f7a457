package cliutil

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/viant/afs"
)

// HashCache persists each file's last-seen content hash across runs, so the
// driver can skip re-logging a progress line for files that haven't
// changed since the previous analysis (inspector/php.ContentHash supplies
// the hash; this just remembers it).
type HashCache struct {
	path   string
	fs     afs.Service
	hashes map[string]uint64
}

// LoadHashCache reads the cache file for root, if one exists. A missing or
// unreadable cache is treated as empty — this is a progress-log nicety, not
// load-bearing state, so failures here never fail the run.
func LoadHashCache(root string) *HashCache {
	c := &HashCache{
		path:   cachePath(root),
		fs:     afs.New(),
		hashes: make(map[string]uint64),
	}

	f, err := os.Open(c.path)
	if err != nil {
		return c
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.LastIndexByte(line, ' ')
		if idx < 0 {
			continue
		}
		hash, err := strconv.ParseUint(line[idx+1:], 10, 64)
		if err != nil {
			continue
		}
		c.hashes[line[:idx]] = hash
	}
	return c
}

// Unchanged reports whether file's content hash matches the previous run's,
// and records hash for the next Save.
func (c *HashCache) Unchanged(file string, hash uint64) bool {
	prior, ok := c.hashes[file]
	c.hashes[file] = hash
	return ok && prior == hash
}

// Save persists the cache for the next run. Errors are non-fatal.
func (c *HashCache) Save() {
	var sb strings.Builder
	for file, hash := range c.hashes {
		fmt.Fprintf(&sb, "%s %d\n", file, hash)
	}
	_ = c.fs.Upload(context.Background(), c.path, 0o644, strings.NewReader(sb.String()))
}

func cachePath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	slug := strings.NewReplacer(string(filepath.Separator), "_", " ", "_").Replace(strings.TrimLeft(abs, string(filepath.Separator)))
	return filepath.Join(os.TempDir(), "statan-hash-cache-"+slug)
}
