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
	"bennypowers.dev/cssmodules/types"
)

// SourceMapLookup is implemented by a concrete preprocessor's source map
// representation when it can translate a transformed-source position back
// to the pre-transform original. The Locator core never constructs one
// itself — the Transformer is an excluded collaborator (spec §1) — it only
// consults one if the Transformer supplied it.
type SourceMapLookup interface {
	Original(line, column int) (file string, origLine int, origColumn int)
}

// PositionMapper translates a position in the transformed AST back to the
// original source file, built once per load (spec §9). With no source map
// it's a passthrough onto the file being parsed.
type PositionMapper struct {
	from   string
	lookup func(line, column int) (string, int, int)
}

// NewPositionMapper builds a mapper for the file at "from". If m implements
// SourceMapLookup, positions are translated through it; otherwise they are
// taken directly from the transformed AST, attributed to "from".
func NewPositionMapper(from string, m any) *PositionMapper {
	pm := &PositionMapper{from: from}
	if smp, ok := m.(SourceMapLookup); ok {
		pm.lookup = smp.Original
	}
	return pm
}

// Locate converts a 0-based tree-sitter row/column into a 1-based-line
// Location.
func (p *PositionMapper) Locate(row, column uint) types.Location {
	line := int(row) + 1
	col := int(column)
	if p.lookup != nil {
		file, origLine, origCol := p.lookup(line, col)
		return types.Location{FilePath: file, Line: origLine, Column: origCol}
	}
	return types.Location{FilePath: p.from, Line: line, Column: col}
}
