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

package locator

import (
	"bennypowers.dev/cssmodules/internal/platform"
	"bennypowers.dev/cssmodules/resolver"
	"bennypowers.dev/cssmodules/transform"
)

// Options configures a Locator. Every field is optional; the zero value
// builds a Locator with no preprocessor support, the default
// filesystem-based resolver, and the real filesystem.
type Options struct {
	// Transformer is the excluded preprocessor collaborator (spec §1). Nil
	// means no preprocessing: every sheet is parsed as plain CSS.
	Transformer transform.Transformer

	// Resolver is the excluded specifier resolver collaborator (spec §1).
	// Nil installs resolver.NewFileSystemResolver against FileSystem.
	Resolver resolver.Resolver

	// FileSystem backs all reads this Locator performs, including the
	// default Resolver's existence probes. Nil means the real filesystem.
	FileSystem platform.FileSystem
}
