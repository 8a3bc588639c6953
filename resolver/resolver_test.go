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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cssmodules/resolver"
	"bennypowers.dev/cssmodules/types"
)

func TestStrict_WrapsOkFalseAsResolutionError(t *testing.T) {
	always := func(spec string, ctx resolver.Context) (string, bool) { return "", false }
	strict := resolver.NewStrict(always)

	_, err := strict.Resolve("./missing.css", "/src/a.css")
	require.Error(t, err)

	var resErr *types.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "./missing.css", resErr.Specifier)
	assert.Equal(t, "/src/a.css", resErr.RequestedFrom)
}

func TestStrict_PassesThroughOnSuccess(t *testing.T) {
	always := func(spec string, ctx resolver.Context) (string, bool) { return "/resolved.css", true }
	strict := resolver.NewStrict(always)

	path, err := strict.Resolve("./a.css", "/src/b.css")
	require.NoError(t, err)
	assert.Equal(t, "/resolved.css", path)
}
