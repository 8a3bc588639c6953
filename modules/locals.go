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

// Package modules implements CSS-Modules "local" semantics: which class
// selectors in a sheet are considered its locally exported tokens.
package modules

import "bennypowers.dev/cssmodules/cssast"

// LocalTokenNames returns the set of class-selector names that count as
// locally declared in this sheet: any selector occurrence outside a
// :global(...) wrapper.
//
// A name that appears both locally and purely inside :global(...) elsewhere
// in the same sheet is still considered local — a known false positive
// this technique accepts (spec §4.E) rather than trying to disambiguate by
// occurrence.
func LocalTokenNames(selectors []cssast.ClassSelectorOccurrence) map[string]struct{} {
	locals := make(map[string]struct{})
	for _, sel := range selectors {
		if !sel.IsGlobal {
			locals[sel.Name] = struct{}{}
		}
	}
	return locals
}
