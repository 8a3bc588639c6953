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

// Package types holds the data model shared by every Locator component:
// source locations, tokens, load results, and cache entries.
package types

// Location is a point in an original, pre-transform source file.
//
// Line is 1-based, Column is 0-based, matching the convention of CSS
// tooling source maps.
type Location struct {
	FilePath string
	Line     int
	Column   int
}

// Token is an identifier exported from a CSS Modules sheet: a local class
// name, or an @value binding (optionally re-exported under an alias).
type Token struct {
	Name             string
	ImportedName     string // empty unless re-exported under an alias
	OriginalLocation Location
}

// HasAlias reports whether the token was imported under a name other than
// the one it was declared with.
func (t Token) HasAlias() bool {
	return t.ImportedName != "" && t.ImportedName != t.Name
}

// Equal reports structural equality over the full record, the definition
// used for LoadResult.Tokens de-duplication (spec invariant: tokens unique
// under structural equality).
func (t Token) Equal(other Token) bool {
	return t == other
}

// LoadResult is the outcome of loading a single stylesheet: its transitive
// file dependencies (never including the sheet itself) and the tokens it
// exports (including tokens re-exported from files it imports).
type LoadResult struct {
	Dependencies []string
	Tokens       []Token
}

// CacheEntry is what the Cache stores per absolute file path.
type CacheEntry struct {
	Mtime  int64 // milliseconds since epoch, from the filesystem
	Result LoadResult
}
