// Package snippet provides a process-scoped read-through cache of file head
// snippets, keyed by path. Inputs are static assets, so entries are never
// invalidated.
package snippet

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/alecKarfonta/zelda-sub001/internal/util"
)

// DefaultLines is the number of leading lines kept per snippet.
const DefaultLines = 8

// maxLineWidth bounds each snippet line so generated data files with very
// long lines stay readable in terminal output.
const maxLineWidth = 96

// Cache loads each file at most once, collapsing concurrent requests for the
// same path into a single read.
type Cache struct {
	lines int

	mu      sync.RWMutex
	entries map[string]string
	group   singleflight.Group
}

// NewCache creates a Cache that keeps the first lines lines of each file.
// lines <= 0 selects DefaultLines.
func NewCache(lines int) *Cache {
	if lines <= 0 {
		lines = DefaultLines
	}
	return &Cache{
		lines:   lines,
		entries: make(map[string]string),
	}
}

// Get returns the head snippet for path, reading the file on first use.
func (c *Cache) Get(path string) (string, error) {
	c.mu.RLock()
	s, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		loaded, err := load(path, c.lines)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.entries[path] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len reports the number of cached snippets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func load(path string, lines int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading snippet from %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 0; n < lines && sc.Scan(); n++ {
		sb.WriteString(util.TruncateString(sc.Text(), maxLineWidth))
		sb.WriteString("\n")
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading snippet from %s: %w", path, err)
	}
	return sb.String(), nil
}
