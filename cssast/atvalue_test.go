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

package cssast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/cssmodules/cssast"
)

func TestParseAtValue_PlainDeclaration(t *testing.T) {
	v := cssast.ParseAtValue("blue: #00f")
	assert.False(t, v.IsImport)
	assert.Equal(t, "blue", v.Name)
}

func TestParseAtValue_ArithmeticRightHandSideIsOpaque(t *testing.T) {
	v := cssast.ParseAtValue("v2: v1")
	assert.False(t, v.IsImport)
	assert.Equal(t, "v2", v.Name)
}

func TestParseAtValue_SingleImport(t *testing.T) {
	v := cssast.ParseAtValue(`blue from "./colors.css"`)
	assert.True(t, v.IsImport)
	assert.Equal(t, "./colors.css", v.From)
	assert.Equal(t, []cssast.ValueImport{{Local: "blue", Imported: "blue"}}, v.Imports)
}

func TestParseAtValue_AliasedImport(t *testing.T) {
	v := cssast.ParseAtValue(`blue as brandBlue from "./colors.css"`)
	assert.True(t, v.IsImport)
	assert.Equal(t, []cssast.ValueImport{{Local: "brandBlue", Imported: "blue"}}, v.Imports)
}

func TestParseAtValue_MultipleImports(t *testing.T) {
	v := cssast.ParseAtValue(`blue, red as danger from "./colors.css"`)
	assert.True(t, v.IsImport)
	assert.Equal(t, []cssast.ValueImport{
		{Local: "blue", Imported: "blue"},
		{Local: "danger", Imported: "red"},
	}, v.Imports)
}

func TestParseAtValue_SingleQuotedSpecifier(t *testing.T) {
	v := cssast.ParseAtValue(`blue from './colors.css'`)
	assert.True(t, v.IsImport)
	assert.Equal(t, "./colors.css", v.From)
}
