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

package platform

import (
	"io/fs"
	"sync"
)

// CountingFileSystem wraps a FileSystem and records how many times each
// operation was called, so tests can assert a cache hit performed no reads.
type CountingFileSystem struct {
	mu        sync.Mutex
	inner     FileSystem
	ReadCalls int
	StatCalls int
}

// NewCountingFileSystem wraps inner with call counters.
func NewCountingFileSystem(inner FileSystem) *CountingFileSystem {
	return &CountingFileSystem{inner: inner}
}

func (c *CountingFileSystem) ReadFile(name string) ([]byte, error) {
	c.mu.Lock()
	c.ReadCalls++
	c.mu.Unlock()
	return c.inner.ReadFile(name)
}

func (c *CountingFileSystem) Stat(name string) (fs.FileInfo, error) {
	c.mu.Lock()
	c.StatCalls++
	c.mu.Unlock()
	return c.inner.Stat(name)
}

func (c *CountingFileSystem) Exists(name string) bool {
	return c.inner.Exists(name)
}

func (c *CountingFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return c.inner.ReadDir(name)
}

// Reset zeroes the counters, useful between phases of a multi-step test.
func (c *CountingFileSystem) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ReadCalls = 0
	c.StatCalls = 0
}
