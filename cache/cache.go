/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package cache is the Locator's per-file (mtime, LoadResult) store with a
// transitive, mtime-based staleness check. Entries are never evicted
// explicitly; their lifetime is the Locator's lifetime.
package cache

import (
	"sync"

	"bennypowers.dev/cssmodules/internal/platform"
	"bennypowers.dev/cssmodules/types"
)

// Cache holds one CacheEntry per absolute file path.
type Cache struct {
	mu      sync.RWMutex
	fs      platform.FileSystem
	entries map[string]types.CacheEntry
}

// New builds an empty Cache backed by fs, which it uses to read current
// mtimes when checking freshness.
func New(fs platform.FileSystem) *Cache {
	return &Cache{
		fs:      fs,
		entries: make(map[string]types.CacheEntry),
	}
}

// Get returns the stored entry for path, if any, making no freshness check.
func (c *Cache) Get(path string) (types.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[path]
	return entry, ok
}

// Set stores (or replaces) the entry for path.
func (c *Cache) Set(path string, entry types.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry
}

// IsStale reports whether path's cached entry can no longer be trusted:
// no entry exists, path's own mtime has moved, or any of its recorded
// dependencies is stale one level deep (missing entry, or its own mtime has
// moved). Each dependency was itself cached under this same rule, so the
// one-level check composes into full transitive freshness (spec §4.G).
func (c *Cache) IsStale(path string) bool {
	entry, ok := c.Get(path)
	if !ok {
		return true
	}

	mtime, exists := c.currentMtime(path)
	if !exists || mtime != entry.Mtime {
		return true
	}

	for _, dep := range entry.Result.Dependencies {
		depEntry, ok := c.Get(dep)
		if !ok {
			return true
		}
		depMtime, exists := c.currentMtime(dep)
		if !exists || depMtime != depEntry.Mtime {
			return true
		}
	}

	return false
}

func (c *Cache) currentMtime(path string) (int64, bool) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return 0, false
	}
	return platform.MtimeMillis(info), true
}
