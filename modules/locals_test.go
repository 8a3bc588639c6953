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

package modules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/cssmodules/cssast"
	"bennypowers.dev/cssmodules/modules"
)

func TestLocalTokenNames_ExcludesGlobalOnly(t *testing.T) {
	locals := modules.LocalTokenNames([]cssast.ClassSelectorOccurrence{
		{Name: "button", IsGlobal: false},
		{Name: "reset", IsGlobal: true},
	})

	_, hasButton := locals["button"]
	_, hasReset := locals["reset"]
	assert.True(t, hasButton)
	assert.False(t, hasReset)
}

func TestLocalTokenNames_CollisionAcceptsFalsePositive(t *testing.T) {
	locals := modules.LocalTokenNames([]cssast.ClassSelectorOccurrence{
		{Name: "icon", IsGlobal: true},
		{Name: "icon", IsGlobal: false},
	})

	_, ok := locals["icon"]
	assert.True(t, ok, "a name declared locally anywhere counts as local, even if also seen in a :global(...) occurrence")
}

func TestLocalTokenNames_EmptyInput(t *testing.T) {
	locals := modules.LocalTokenNames(nil)
	assert.Empty(t, locals)
}
