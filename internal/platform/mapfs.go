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
	"testing/fstest"
	"time"
)

// MapFS wraps testing/fstest.MapFS to implement FileSystem, giving tests an
// in-memory filesystem with controllable mtimes (fstest.MapFS paths must be
// fs.ValidPath, so fixtures use root-relative names like "pkg/a.css" rather
// than OS-absolute paths; the Locator treats whatever string the fixture
// uses consistently as "absolute").
type MapFS struct {
	fstest.MapFS
}

// NewMapFS creates a new in-memory filesystem from a map of file contents.
// Every file is stamped with the same initial mtime so tests can bump
// individual files forward with Touch.
func NewMapFS(files map[string]string) *MapFS {
	mapFS := make(fstest.MapFS, len(files))
	now := time.Unix(1700000000, 0)
	for path, content := range files {
		mapFS[path] = &fstest.MapFile{
			Data:    []byte(content),
			Mode:    0644,
			ModTime: now,
		}
	}
	return &MapFS{MapFS: mapFS}
}

// Touch advances name's mtime past its current value, simulating an edit.
func (m *MapFS) Touch(name string) {
	f, ok := m.MapFS[name]
	if !ok {
		f = &fstest.MapFile{Mode: 0644}
		m.MapFS[name] = f
	}
	f.ModTime = f.ModTime.Add(time.Second)
}

// Write sets or replaces a file's contents and bumps its mtime, as Touch
// does. Convenient for tests that edit a fixture mid-scenario.
func (m *MapFS) Write(name, content string) {
	f, ok := m.MapFS[name]
	if !ok {
		f = &fstest.MapFile{Mode: 0644, ModTime: time.Unix(1700000000, 0)}
		m.MapFS[name] = f
	}
	f.Data = []byte(content)
	f.ModTime = f.ModTime.Add(time.Second)
}

func (m *MapFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(m.MapFS, name)
}

func (m *MapFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(m.MapFS, name)
}

func (m *MapFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.MapFS, name)
}

func (m *MapFS) Exists(name string) bool {
	_, err := fs.Stat(m.MapFS, name)
	return err == nil
}
