// Package assets loads startup resources (shader sources and the backdrop
// image) from layered file systems and caches them.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/logger"
)

// ErrNotFound is returned when no source holds the requested path.
var ErrNotFound = errors.New("asset not found")

type source struct {
	name   string
	prefix string
	fsys   fs.FS
}

// Manager resolves slash-separated asset paths against its sources. Sources
// added later take priority, so a directory on disk can override embedded
// defaults.
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager with no sources.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddSource mounts fsys under prefix. An empty prefix mounts at the root.
func (m *Manager) AddSource(name, prefix string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, prefix: strings.Trim(prefix, "/"), fsys: fsys})
	m.mu.Unlock()
	logger.Debug("asset source added", zap.String("name", name), zap.String("prefix", prefix))
}

// AddDir mounts a directory on disk at the root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s: not a directory", dir)
	}
	m.AddSource(dir, "", os.DirFS(dir))
	return nil
}

// Load returns the contents of p from the highest-priority source that has it.
func (m *Manager) Load(p string) ([]byte, error) {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if data, ok := m.cache.Get(p); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		rel, ok := src.resolve(p)
		if !ok {
			continue
		}
		data, err := fs.ReadFile(src.fsys, rel)
		if err == nil {
			m.cache.Set(p, data)
			logger.Debug("asset loaded", zap.String("path", p), zap.String("source", src.name), zap.Int("bytes", len(data)))
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", p, src.name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// LoadText returns p as a string.
func (m *Manager) LoadText(p string) (string, error) {
	data, err := m.Load(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = nil
	m.cache.Clear()
}

func (s source) resolve(p string) (string, bool) {
	if s.prefix == "" {
		return p, fs.ValidPath(p)
	}
	rel, ok := strings.CutPrefix(p, s.prefix+"/")
	if !ok {
		return "", false
	}
	return rel, fs.ValidPath(rel)
}

// Cache is an in-memory cache of loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item and records a hit or miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
