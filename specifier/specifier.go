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

// Package specifier classifies the raw strings found in @import and
// @value ... from arguments, ahead of any attempt to resolve them.
package specifier

import "strings"

// IsIgnored reports whether specifier is a remote URL the Locator will
// never try to resolve. Applied uniformly, before resolution is attempted,
// for both @import and @value import specifiers.
func IsIgnored(spec string) bool {
	return IsURL(spec)
}

// IsURL reports whether spec begins with an http(s) scheme.
func IsURL(spec string) bool {
	return strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://")
}
