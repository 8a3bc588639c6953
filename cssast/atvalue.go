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

package cssast

import (
	"regexp"
	"strings"
)

// ValueImport is one binding inside an @value ... from "..." import list:
// "a" contributes {Local: "a", Imported: "a"}, "b as c" contributes
// {Local: "c", Imported: "b"}.
type ValueImport struct {
	Local    string
	Imported string
}

// AtValue is the tagged parse of an @value at-rule's prelude (design §9):
// either a plain declaration, or an import list pulling names from another
// sheet. Tree-sitter-css has no dedicated node for this CSS-Modules
// extension — @value parses as a generic at_rule — so the prelude text is
// parsed the same way postcss-modules-values does.
type AtValue struct {
	IsImport bool

	// Declaration fields.
	Name string

	// ImportDeclaration fields.
	From    string
	Imports []ValueImport
}

// importPattern matches "name[, name2 ...]" optionally aliased with
// "as", followed by "from <quoted-specifier>". A plain declaration
// ("name: value") never matches since a colon immediately follows the
// first identifier instead of "," or " from ".
var importPattern = regexp.MustCompile(`(?s)^((?:[A-Za-z_][\w-]*(?:\s+as\s+[A-Za-z_][\w-]*)?\s*,\s*)*[A-Za-z_][\w-]*(?:\s+as\s+[A-Za-z_][\w-]*)?)\s+from\s+(.+)$`)

// ParseAtValue parses the text following "@value" and before the
// terminating ";" (or end of at-rule).
func ParseAtValue(prelude string) AtValue {
	prelude = strings.TrimSpace(prelude)

	if m := importPattern.FindStringSubmatch(prelude); m != nil {
		names := strings.Split(m[1], ",")
		imports := make([]ValueImport, 0, len(names))
		for _, n := range names {
			imports = append(imports, parseImportName(n))
		}
		return AtValue{
			IsImport: true,
			From:     unquote(strings.TrimSpace(m[2])),
			Imports:  imports,
		}
	}

	name, _, _ := strings.Cut(prelude, ":")
	return AtValue{Name: strings.TrimSpace(name)}
}

func parseImportName(raw string) ValueImport {
	raw = strings.TrimSpace(raw)
	imported, local, found := strings.Cut(raw, " as ")
	if !found {
		// case-insensitive fallback for "AS"
		if idx := strings.Index(strings.ToLower(raw), " as "); idx >= 0 {
			imported, local = raw[:idx], raw[idx+4:]
			found = true
		}
	}
	imported = strings.TrimSpace(imported)
	if !found {
		return ValueImport{Local: imported, Imported: imported}
	}
	return ValueImport{Local: strings.TrimSpace(local), Imported: imported}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
