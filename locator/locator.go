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

// Package locator implements the Load engine: it ties together resolution,
// preprocessing, AST collection, local-token enumeration and the cache into
// the single public Load operation.
package locator

import (
	"bytes"
	"strings"

	"bennypowers.dev/cssmodules/cache"
	"bennypowers.dev/cssmodules/cssast"
	"bennypowers.dev/cssmodules/internal/logging"
	"bennypowers.dev/cssmodules/internal/platform"
	"bennypowers.dev/cssmodules/modules"
	"bennypowers.dev/cssmodules/resolver"
	"bennypowers.dev/cssmodules/specifier"
	"bennypowers.dev/cssmodules/transform"
	"bennypowers.dev/cssmodules/types"
)

// Locator is the root object: one Locator per root stylesheet's dependency
// graph (though any number of Load calls against unrelated files can share
// one, amortizing the cache across them).
type Locator struct {
	fs        platform.FileSystem
	resolver  *resolver.Strict
	gateway   *transform.Gateway
	collector *cssast.Collector
	cache     *cache.Cache
	guard     guard
}

// New builds a Locator from opts, filling in the filesystem-backed default
// resolver and the stock (backend-less) transform gateway where opts leaves
// them unset.
func New(opts Options) *Locator {
	fs := opts.FileSystem
	if fs == nil {
		fs = platform.NewOSFileSystem()
	}

	resolve := opts.Resolver
	if resolve == nil {
		resolve = resolver.NewFileSystemResolver(fs).Resolve
	}

	return &Locator{
		fs:        fs,
		resolver:  resolver.NewStrict(resolve),
		gateway:   transform.NewGateway(opts.Transformer),
		collector: cssast.NewCollector(),
		cache:     cache.New(fs),
	}
}

// session tracks the files currently being loaded within one top-level Load
// call, breaking import cycles: a file re-entered while already in progress
// contributes an empty result rather than recursing forever (spec §9).
type session struct {
	inProgress map[string]bool
}

// Load resolves, parses and extracts tokens from the stylesheet at
// filePath, recursively following its @import and @value ... from
// dependencies, and returns the merged result. Only one Load may be in
// flight on a Locator at a time; a second concurrent call is rejected with
// a *types.ConcurrentLoadError rather than queued or interleaved.
func (l *Locator) Load(filePath string) (types.LoadResult, error) {
	if !l.guard.acquire() {
		return types.LoadResult{}, &types.ConcurrentLoadError{FilePath: filePath}
	}
	defer l.guard.release()

	sess := &session{inProgress: make(map[string]bool)}
	return l.loadFile(filePath, sess)
}

func (l *Locator) loadFile(path string, sess *session) (types.LoadResult, error) {
	if sess.inProgress[path] {
		logging.Debug("import cycle detected at %s, contributing empty result", path)
		return types.LoadResult{}, nil
	}

	if !l.cache.IsStale(path) {
		entry, _ := l.cache.Get(path)
		logging.Debug("cache hit: %s", path)
		return entry.Result, nil
	}

	sess.inProgress[path] = true
	defer delete(sess.inProgress, path)

	info, err := l.fs.Stat(path)
	if err != nil {
		return types.LoadResult{}, &types.IOError{FilePath: path, Op: "stat", Err: err}
	}
	mtime := platform.MtimeMillis(info)

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return types.LoadResult{}, &types.IOError{FilePath: path, Op: "read", Err: err}
	}

	transformed, err := l.gateway.Apply(normalizeSource(raw), transform.Context{
		From:      path,
		Resolver:  l.resolver,
		IsIgnored: specifier.IsIgnored,
	})
	if err != nil {
		return types.LoadResult{}, err
	}

	positions := cssast.NewPositionMapper(path, transformed.Map)
	ast, err := l.collector.Collect(transformed.CSS, positions)
	if err != nil {
		return types.LoadResult{}, err
	}

	localNames := modules.LocalTokenNames(ast.ClassSelectors)

	var deps []string
	seenDeps := map[string]bool{path: true}
	addDep := func(p string) {
		if seenDeps[p] {
			return
		}
		seenDeps[p] = true
		deps = append(deps, p)
	}
	for _, d := range transformed.Dependencies {
		addDep(d)
	}

	var tokens []types.Token

	// @import, in document order: resolve and recurse before anything else
	// in the file is interpreted (spec §5 ordering guarantee).
	for _, imp := range ast.Imports {
		if specifier.IsIgnored(imp.Specifier) {
			continue
		}
		resolved, err := l.resolver.Resolve(imp.Specifier, path)
		if err != nil {
			return types.LoadResult{}, err
		}
		result, err := l.loadFile(resolved, sess)
		if err != nil {
			return types.LoadResult{}, err
		}
		addDep(resolved)
		for _, d := range result.Dependencies {
			addDep(d)
		}
		tokens = append(tokens, result.Tokens...)
	}

	// composes ... from "...": a real dependency, but contributes no Token
	// of its own (spec §8 scenario 2). Unlike @import, an unresolvable
	// target is tolerated rather than fatal (scenario 3) since a
	// preprocessor pass may have already rewritten or swallowed it before
	// the CSS layer ever saw a resolvable reference.
	for _, comp := range ast.Composes {
		if specifier.IsIgnored(comp.Specifier) {
			continue
		}
		resolved, err := l.resolver.Resolve(comp.Specifier, path)
		if err != nil {
			logging.Debug("composes target %q in %s could not be resolved, omitted from dependencies", comp.Specifier, path)
			continue
		}
		result, err := l.loadFile(resolved, sess)
		if err != nil {
			return types.LoadResult{}, err
		}
		addDep(resolved)
		for _, d := range result.Dependencies {
			addDep(d)
		}
	}

	// Class-selector tokens: a selector counts if its name was declared
	// locally anywhere in the sheet, even at an occurrence that is itself
	// wrapped in :global(...) (the accepted false positive of
	// modules.LocalTokenNames).
	for _, sel := range ast.ClassSelectors {
		if _, ok := localNames[sel.Name]; ok {
			tokens = append(tokens, types.Token{Name: sel.Name, OriginalLocation: sel.Location})
		}
	}

	// @value declarations and imports, last.
	for _, val := range ast.Values {
		if !val.IsImport {
			tokens = append(tokens, types.Token{Name: val.Name, OriginalLocation: val.Location})
			continue
		}

		if specifier.IsIgnored(val.From) {
			logging.Warning("@value import from remote specifier %q in %s ignored", val.From, path)
			continue
		}

		resolved, err := l.resolver.Resolve(val.From, path)
		if err != nil {
			return types.LoadResult{}, err
		}
		result, err := l.loadFile(resolved, sess)
		if err != nil {
			return types.LoadResult{}, err
		}
		addDep(resolved)
		for _, d := range result.Dependencies {
			addDep(d)
		}

		for _, binding := range val.Imports {
			for _, srcToken := range result.Tokens {
				if srcToken.Name != binding.Imported {
					continue
				}
				tok := types.Token{Name: binding.Local, OriginalLocation: srcToken.OriginalLocation}
				if binding.Local != binding.Imported {
					tok.ImportedName = binding.Imported
				}
				tokens = append(tokens, tok)
			}
		}
	}

	result := types.LoadResult{
		Dependencies: deps,
		Tokens:       dedupeTokens(tokens),
	}
	l.cache.Set(path, types.CacheEntry{Mtime: mtime, Result: result})
	return result, nil
}

// normalizeSource strips a leading UTF-8 BOM and canonicalizes line endings
// to "\n" before parsing, so Windows-authored fixtures don't trip a spurious
// SyntaxError on the CSS grammar's expectations.
func normalizeSource(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	s := string(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// dedupeTokens removes structural duplicates while preserving first-seen
// order (spec invariant: LoadResult.Tokens is unique under Token.Equal).
func dedupeTokens(tokens []types.Token) []types.Token {
	seen := make(map[types.Token]bool, len(tokens))
	out := make([]types.Token, 0, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
