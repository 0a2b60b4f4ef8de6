package ui

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"arsenal/internal/derive"
)

// RenderCache memoizes rendered strings by a hash of their inputs.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	maxSize int
}

// NewRenderCache creates a cache holding at most maxSize entries.
// When full, the cache is emptied before the next insert.
func NewRenderCache(maxSize int) *RenderCache {
	return &RenderCache{
		entries: make(map[uint64]string),
		maxSize: max(maxSize, 1),
	}
}

// ComputeKey hashes strings, ints, floats and bools with FNV-1a.
// Other types are ignored.
func ComputeKey(inputs ...any) uint64 {
	h := fnv.New64a()
	var b [8]byte

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
			h.Write([]byte{0})
		case int:
			binary.LittleEndian.PutUint64(b[:], uint64(v))
			h.Write(b[:])
		case float64:
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
			h.Write(b[:])
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// ChartKey is the cache key for a chart render.
func ChartKey(bars []derive.ChartBar, width int, dark bool) uint64 {
	inputs := make([]any, 0, len(bars)*2+2)
	inputs = append(inputs, width, dark)
	for _, b := range bars {
		inputs = append(inputs, b.ID, b.DPS)
	}
	return ComputeKey(inputs...)
}

// Get retrieves cached content if available.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	content, ok := rc.entries[key]
	return content, ok
}

// Set stores rendered content in the cache.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.entries[key]; !ok && len(rc.entries) >= rc.maxSize {
		clear(rc.entries)
	}
	rc.entries[key] = content
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if content, ok := rc.Get(key); ok {
		return content
	}
	content := compute()
	rc.Set(key, content)
	return content
}

// CachedChart wraps a BarChart with a RenderCache.
type CachedChart struct {
	chart BarChart
	cache *RenderCache
	dark  bool
}

// NewCachedChart caches renders of chart. dark is folded into the key so a
// theme change never serves stale colors.
func NewCachedChart(chart BarChart, cache *RenderCache, dark bool) *CachedChart {
	if cache == nil {
		cache = NewRenderCache(64)
	}
	return &CachedChart{chart: chart, cache: cache, dark: dark}
}

// Render implements BarChart.
func (c *CachedChart) Render(bars []derive.ChartBar, width int) string {
	return c.cache.GetOrCompute(ChartKey(bars, width, c.dark), func() string {
		return c.chart.Render(bars, width)
	})
}
