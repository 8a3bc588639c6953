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
	"os"
)

// FileSystem abstracts the filesystem reads the Locator performs. It exists
// so the Load engine and the default resolver can be driven by an in-memory
// fixture in tests instead of touching disk.
type FileSystem interface {
	// ReadFile returns the full contents of name.
	ReadFile(name string) ([]byte, error)

	// Stat returns file info for name, notably ModTime for cache freshness.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether name exists, without distinguishing error causes.
	Exists(name string) bool

	// ReadDir lists the entries of a directory, used by the default
	// node_modules-style resolver to probe candidate paths.
	ReadDir(name string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem using the standard os package. This is
// the production implementation.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (*OSFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func (*OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
