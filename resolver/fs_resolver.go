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

package resolver

import (
	"path"
	"strings"

	"bennypowers.dev/cssmodules/internal/platform"
)

// DefaultExtensions are tried, in order, against a specifier that doesn't
// already resolve to a file as written — mirroring the extension-probing
// a bundler's CSS resolver performs.
var DefaultExtensions = []string{"", ".css", ".scss", ".sass", ".less"}

// FileSystemResolver is the Locator's default Resolver: it resolves
// relative specifiers against the requesting file's directory, and bare
// specifiers (no leading "./", "../" or "/") via a node_modules upward
// walk, the way Node-style CSS loaders do.
type FileSystemResolver struct {
	fs platform.FileSystem
}

// NewFileSystemResolver builds the default filesystem resolver.
func NewFileSystemResolver(fs platform.FileSystem) *FileSystemResolver {
	return &FileSystemResolver{fs: fs}
}

// Resolve implements Resolver.
func (r *FileSystemResolver) Resolve(spec string, ctx Context) (string, bool) {
	switch {
	case isRelative(spec):
		return r.probe(path.Clean(path.Join(path.Dir(ctx.Request), spec)))
	case path.IsAbs(spec):
		return r.probe(path.Clean(spec))
	default:
		return r.resolveBare(spec, ctx.Request)
	}
}

// probe tries spec as given, then with each of DefaultExtensions appended.
func (r *FileSystemResolver) probe(candidate string) (string, bool) {
	for _, ext := range DefaultExtensions {
		p := candidate + ext
		if r.fs.Exists(p) {
			return p, true
		}
	}
	return "", false
}

// resolveBare walks up from the directory containing request looking for
// node_modules/<spec>, the classic Node module resolution algorithm,
// stopping at the filesystem root.
func (r *FileSystemResolver) resolveBare(spec string, request string) (string, bool) {
	dir := path.Dir(request)
	for {
		candidate := path.Join(dir, "node_modules", spec)
		if p, ok := r.probe(candidate); ok {
			return p, true
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
