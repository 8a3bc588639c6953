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
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cssmodules/cssast"
	"bennypowers.dev/cssmodules/types"
)

func names(selectors []cssast.ClassSelectorOccurrence) []string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		out[i] = s.Name
	}
	return out
}

func TestCollector_ClassSelectors(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(".button { color: red; } .button.primary { color: blue; }", cssast.NewPositionMapper("a.css", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"button", "button", "primary"}, names(ast.ClassSelectors))
	for _, sel := range ast.ClassSelectors {
		assert.False(t, sel.IsGlobal)
	}
}

func TestCollector_GlobalWrappedSelectorsAreMarked(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(":global(.reset) .button { color: red; }", cssast.NewPositionMapper("a.css", nil))
	require.NoError(t, err)

	require.Len(t, ast.ClassSelectors, 2)
	byName := map[string]bool{}
	for _, sel := range ast.ClassSelectors {
		byName[sel.Name] = sel.IsGlobal
	}
	assert.True(t, byName["reset"])
	assert.False(t, byName["button"])
}

func TestCollector_ImportStatements(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(`@import "./colors.css"; @import url(./reset.css);`, cssast.NewPositionMapper("a.css", nil))
	require.NoError(t, err)

	require.Len(t, ast.Imports, 2)
	assert.Equal(t, "./colors.css", ast.Imports[0].Specifier)
	assert.Equal(t, "./reset.css", ast.Imports[1].Specifier)
}

func TestCollector_ValueDeclarationAndImport(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(`@value blue: #00f; @value red, green as ok from "./colors.css";`, cssast.NewPositionMapper("a.css", nil))
	require.NoError(t, err)

	require.Len(t, ast.Values, 2)
	assert.False(t, ast.Values[0].IsImport)
	assert.Equal(t, "blue", ast.Values[0].Name)

	assert.True(t, ast.Values[1].IsImport)
	assert.Equal(t, "./colors.css", ast.Values[1].From)
	assert.Equal(t, []cssast.ValueImport{
		{Local: "red", Imported: "red"},
		{Local: "ok", Imported: "green"},
	}, ast.Values[1].Imports)
}

func TestCollector_ComposesFromIsCollectedButNotAToken(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(`.root { composes: base from "./base.css"; color: red; }`, cssast.NewPositionMapper("composer.css", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"root"}, names(ast.ClassSelectors))
	require.Len(t, ast.Composes, 1)
	assert.Equal(t, "./base.css", ast.Composes[0].Specifier)
}

func TestCollector_BareComposesHasNoSpecifier(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(`.root { composes: base; }`, cssast.NewPositionMapper("composer.css", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"root"}, names(ast.ClassSelectors))
	assert.Empty(t, ast.Composes)
}

func TestCollector_NestedMediaBlockSelectorsAreDiscovered(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect(`@media (min-width: 600px) { .wide { display: block; } }`, cssast.NewPositionMapper("a.css", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"wide"}, names(ast.ClassSelectors))
}

func TestCollector_InvalidCSSReturnsSyntaxError(t *testing.T) {
	c := cssast.NewCollector()
	_, err := c.Collect(`.button { color: ; `, cssast.NewPositionMapper("broken.css", nil))
	require.Error(t, err)

	var syntaxErr *types.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "broken.css", syntaxErr.FilePath)
}

func TestCollector_EmptyStylesheetProducesEmptyAST(t *testing.T) {
	c := cssast.NewCollector()
	ast, err := c.Collect("", cssast.NewPositionMapper("empty.css", nil))
	require.NoError(t, err)

	assert.Empty(t, ast.Imports)
	assert.Empty(t, ast.Values)
	assert.Empty(t, ast.ClassSelectors)
}
