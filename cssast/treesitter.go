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

// Package cssast parses (possibly preprocessor-transformed) CSS with the
// real CSS grammar and exposes the three node streams the Load engine
// needs: @import at-rules, @value at-rules, and class selectors.
package cssast

import (
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
	tsCss "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

var cssLanguage = ts.NewLanguage(tsCss.Language())

// parserPool recycles *ts.Parser instances configured for CSS, the same
// pattern the teacher's query manager uses per-language (cssParserPool in
// generate/queries/queries.go), so concurrent Locators sharing a process
// don't each pay grammar-load cost.
var parserPool = sync.Pool{
	New: func() any {
		p := ts.NewParser()
		if err := p.SetLanguage(cssLanguage); err != nil {
			panic(err) // the embedded grammar is known-good; this can't fail
		}
		return p
	},
}

func getParser() *ts.Parser {
	return parserPool.Get().(*ts.Parser)
}

func putParser(p *ts.Parser) {
	parserPool.Put(p)
}
