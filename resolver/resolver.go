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

// Package resolver wraps a user-supplied specifier resolver into a strict
// form the Load engine can call unconditionally, and ships a filesystem-based
// default resolver.
package resolver

import (
	"bennypowers.dev/cssmodules/types"
)

// Context carries everything a Resolver needs beyond the specifier itself.
type Context struct {
	// Request is the absolute path of the file that referenced the specifier.
	Request string
}

// Resolver maps a specifier relative to a requesting file to an absolute
// filesystem path. It returns ok=false when it cannot resolve the
// specifier; it never itself raises an error; resolution failure is a Strict
// concern (below). A Resolver is expected to be pure with respect to the
// Locator — any side effects belong to the implementation.
type Resolver func(spec string, ctx Context) (path string, ok bool)

// Strict wraps a Resolver so that a false outcome becomes a *types.ResolutionError
// naming both the specifier and the requesting file, instead of a silent
// zero value the Load engine would have to re-check.
type Strict struct {
	resolve Resolver
}

// NewStrict adapts resolve into a Strict resolver.
func NewStrict(resolve Resolver) *Strict {
	return &Strict{resolve: resolve}
}

// Resolve resolves spec from the file at request, or returns a
// *types.ResolutionError.
func (s *Strict) Resolve(spec string, request string) (string, error) {
	path, ok := s.resolve(spec, Context{Request: request})
	if !ok {
		return "", &types.ResolutionError{Specifier: spec, RequestedFrom: request}
	}
	return path, nil
}
