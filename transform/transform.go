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

// Package transform implements the gateway in front of an optional
// preprocessor stage: it applies a Transformer to raw source and normalises
// whatever dependency list the transformer reports into plain file paths.
package transform

import (
	"bennypowers.dev/cssmodules/internal/logging"
	"bennypowers.dev/cssmodules/resolver"
	"bennypowers.dev/cssmodules/specifier"
	"bennypowers.dev/cssmodules/types"
)

// SourceMap is an opaque preprocessor source map. The Locator never decodes
// it itself; it hands it to cssast.NewPositionMapper, which translates a
// transformed-source position back through it when it implements
// cssast.SourceMapLookup.
type SourceMap any

// Dep is one element of the dependency list a Transformer reports, modeled
// as the tagged variant the design calls for: either a bare file path, or a
// structured reference carrying an explicit protocol.
type Dep struct {
	// FilePath is set when this element was reported as a plain string.
	FilePath string
	// Structured is set when this element was reported as a
	// {protocol, pathname} object instead of a bare string.
	Structured *StructuredDep
}

// StructuredDep is the non-string shape a Transformer may report a
// dependency in, e.g. when it distinguishes file: deps from other schemes.
type StructuredDep struct {
	Protocol string
	Pathname string
}

// Context is passed to a Transformer alongside the raw source.
type Context struct {
	From      string
	Resolver  *resolver.Strict
	IsIgnored func(spec string) bool
}

// Outcome is the tagged result of invoking a Transformer: either it did not
// handle the source (NotHandled, ok=false) or it produced CSS plus a
// dependency list and optional source map (Handled, ok=true).
type Outcome struct {
	CSS          string
	Map          SourceMap
	Dependencies []Dep
}

// Transformer is the external preprocessor contract: given raw source and a
// Context, it either returns (Outcome, true) or (zero Outcome, false) to
// mean "not handled", in which case the gateway behaves as if no
// transformer were configured.
type Transformer func(source string, ctx Context) (Outcome, bool)

// Gateway applies an optional Transformer to raw source and normalises its
// reported dependency list into plain file paths, filtering remote ones
// out and failing on any dependency the gateway cannot interpret as file:.
// Paths are kept as the transformer reported them; relative ones are not
// made absolute.
type Gateway struct {
	transformer Transformer
}

// NewGateway builds a Gateway around transformer. A nil transformer means
// "unconfigured": Apply always behaves as a passthrough.
func NewGateway(transformer Transformer) *Gateway {
	return &Gateway{transformer: transformer}
}

// Result is what the Load engine consumes: transformed CSS, the map (if
// any) needed for position translation, and the dependency paths the
// transformer introduced (e.g. SCSS @use/@forward targets), already
// filtered of remote specifiers.
type Result struct {
	CSS          string
	Map          SourceMap
	Dependencies []string
}

// Apply runs the configured Transformer over source, or passes it through
// unchanged if none is configured or the transformer declines the input.
func (g *Gateway) Apply(source string, ctx Context) (Result, error) {
	if g.transformer == nil {
		return Result{CSS: source}, nil
	}

	outcome, handled := g.transformer(source, ctx)
	if !handled {
		logging.Debug("transform: %s not handled by configured transformer, passing through", ctx.From)
		return Result{CSS: source}, nil
	}

	deps, err := normalizeDependencies(outcome.Dependencies)
	if err != nil {
		return Result{}, err
	}

	return Result{CSS: outcome.CSS, Map: outcome.Map, Dependencies: deps}, nil
}

// normalizeDependencies converts the tagged Dep list into plain paths (a
// string as given, a structured dependency's Pathname as given), rejecting
// any structured dependency whose protocol isn't "file:", then drops remote
// (http/https) specifiers.
func normalizeDependencies(raw []Dep) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		var path string
		switch {
		case d.Structured != nil:
			if d.Structured.Protocol != "file:" {
				return nil, &types.UnsupportedProtocolError{
					Specifier: d.Structured.Pathname,
					Protocol:  d.Structured.Protocol,
				}
			}
			path = d.Structured.Pathname
		default:
			path = d.FilePath
		}

		if specifier.IsIgnored(path) {
			continue
		}
		out = append(out, path)
	}
	return out, nil
}
