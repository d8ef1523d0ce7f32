package snippet

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asset.inc.c")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCacheGet(t *testing.T) {
	path := writeTemp(t, "line1\nline2\nline3\n")
	c := NewCache(2)

	got, err := c.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetMissingFile(t *testing.T) {
	c := NewCache(0)
	_, err := c.Get(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCacheReadThrough(t *testing.T) {
	path := writeTemp(t, "original\n")
	c := NewCache(1)

	first, err := c.Get(path)
	require.NoError(t, err)

	// Entries are never invalidated: a rewrite of the file is not observed.
	require.NoError(t, os.WriteFile(path, []byte("rewritten\n"), 0644))
	second, err := c.Get(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCacheConcurrentGet(t *testing.T) {
	path := writeTemp(t, "shared\n")
	c := NewCache(1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Get(path)
			assert.NoError(t, err)
			assert.Equal(t, "shared\n", got)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
