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

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cssmodules/transform"
	"bennypowers.dev/cssmodules/types"
)

func TestGateway_NilTransformerIsPassthrough(t *testing.T) {
	gw := transform.NewGateway(nil)

	result, err := gw.Apply(".a {}", transform.Context{From: "a.css"})
	require.NoError(t, err)
	assert.Equal(t, ".a {}", result.CSS)
	assert.Empty(t, result.Dependencies)
}

func TestGateway_DeclinedTransformerIsPassthrough(t *testing.T) {
	declines := func(source string, ctx transform.Context) (transform.Outcome, bool) {
		return transform.Outcome{}, false
	}
	gw := transform.NewGateway(declines)

	result, err := gw.Apply("$x: 1;", transform.Context{From: "a.scss"})
	require.NoError(t, err)
	assert.Equal(t, "$x: 1;", result.CSS)
}

func TestGateway_HandledTransformerNormalizesDependencies(t *testing.T) {
	handles := func(source string, ctx transform.Context) (transform.Outcome, bool) {
		return transform.Outcome{
			CSS: ".a {}",
			Dependencies: []transform.Dep{
				{FilePath: "./partials/_vars.scss"},
				{FilePath: "https://fonts.example.com/a.css"},
				{Structured: &transform.StructuredDep{Protocol: "file:", Pathname: "./partials/_mixins.scss"}},
			},
		}, true
	}
	gw := transform.NewGateway(handles)

	result, err := gw.Apply("@use 'vars';", transform.Context{From: "a.scss"})
	require.NoError(t, err)
	assert.Equal(t, ".a {}", result.CSS)
	assert.Equal(t, []string{"./partials/_vars.scss", "./partials/_mixins.scss"}, result.Dependencies)
}

func TestGateway_StructuredDepWithUnsupportedProtocolFails(t *testing.T) {
	handles := func(source string, ctx transform.Context) (transform.Outcome, bool) {
		return transform.Outcome{
			CSS: ".a {}",
			Dependencies: []transform.Dep{
				{Structured: &transform.StructuredDep{Protocol: "npm:", Pathname: "some-package"}},
			},
		}, true
	}
	gw := transform.NewGateway(handles)

	_, err := gw.Apply("@use 'pkg';", transform.Context{From: "a.scss"})
	require.Error(t, err)

	var protoErr *types.UnsupportedProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "npm:", protoErr.Protocol)
}
