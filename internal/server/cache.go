package server

import (
	"image"
	"log/slog"
	"sync"

	"github.com/ironsheep/voronoi-mcp/internal/voronoi"
)

// Entry is a simulated diagram together with its raster.
//
// Entries are shared between tool calls and must be treated as read-only.
type Entry struct {
	Diagram *voronoi.Diagram
	Image   *image.NRGBA
	Ticks   int
}

// DiagramCache keeps generated diagrams keyed by their resolved Config.
//
// A diagram is fully determined by its resolved Config as long as the seed is
// set, so repeated tool calls against the same parameters (generate, then
// sample, then crop) reuse one simulation. Requests without a seed use the
// clock and are never cached.
//
// DiagramCache is safe for concurrent use.
type DiagramCache struct {
	mu      sync.RWMutex
	entries map[voronoi.Config]*Entry
}

// NewDiagramCache creates an empty cache.
func NewDiagramCache() *DiagramCache {
	return &DiagramCache{
		entries: make(map[voronoi.Config]*Entry),
	}
}

// Load returns the cached entry for cfg or generates it.
func (c *DiagramCache) Load(cfg voronoi.Config) (*Entry, error) {
	key := cfg.Resolved()

	if key.Seed != "" {
		c.mu.RLock()
		if e, ok := c.entries[key]; ok {
			c.mu.RUnlock()
			slog.Debug("diagram cache hit", "seed", key.Seed, "regions", key.Regions)
			return e, nil
		}
		c.mu.RUnlock()
	}

	d, err := voronoi.New(key)
	if err != nil {
		return nil, err
	}
	ticks := d.Simulate()
	e := &Entry{Diagram: d, Image: d.Rasterize(), Ticks: ticks}

	if key.Seed != "" {
		c.mu.Lock()
		c.entries[key] = e
		c.mu.Unlock()
	}

	return e, nil
}

// Len returns the number of cached diagrams.
func (c *DiagramCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached diagram.
func (c *DiagramCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[voronoi.Config]*Entry)
	c.mu.Unlock()
}
