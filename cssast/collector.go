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

package cssast

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"bennypowers.dev/cssmodules/types"
)

// ImportOccurrence is one @import at-rule, with its raw (still
// quoted/unquoted) specifier argument.
type ImportOccurrence struct {
	Specifier string
}

// ValueOccurrence is one @value at-rule, parsed into its tagged shape plus
// the original-source location of the at-rule itself.
type ValueOccurrence struct {
	AtValue
	Location types.Location
}

// ClassSelectorOccurrence is one class selector found inside a rule's
// selector list, with whether it sits inside a :global(...) wrapper.
type ClassSelectorOccurrence struct {
	Name     string
	IsGlobal bool
	Location types.Location
}

// ComposesOccurrence is a "composes: ... from '...'" declaration inside a
// rule's block. Only the cross-file target matters to the Load engine: a
// composes declaration never itself contributes a Token (spec §8 scenario
// 2), but a "from" target is a real dependency of the sheet.
type ComposesOccurrence struct {
	Specifier string
}

// AST is everything the Load engine needs out of one parsed stylesheet.
type AST struct {
	Imports        []ImportOccurrence
	Values         []ValueOccurrence
	ClassSelectors []ClassSelectorOccurrence
	Composes       []ComposesOccurrence
}

// Collector parses CSS source and collects @import / @value / class
// selector occurrences.
type Collector struct{}

// NewCollector builds a Collector. It holds no state; it exists as a type
// so call sites read like the rest of the Locator's component boundaries.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect parses css (already preprocessor-transformed, if a transformer is
// configured) and walks the resulting tree. positions translates node
// positions back to the original pre-transform source.
func (c *Collector) Collect(css string, positions *PositionMapper) (AST, error) {
	parser := getParser()
	defer putParser(parser)

	code := []byte(css)
	tree := parser.Parse(code, nil)
	defer tree.Close()

	root := tree.RootNode()
	if firstErr := findParseError(root); firstErr != nil {
		loc := positions.Locate(firstErr.StartPosition().Row, firstErr.StartPosition().Column)
		return AST{}, &types.SyntaxError{
			FilePath: loc.FilePath,
			Line:     loc.Line,
			Column:   loc.Column,
			Reason:   "unexpected token near " + truncate(firstErr.Utf8Text(code), 32),
		}
	}

	var ast AST
	walkStatements(root, code, positions, &ast)
	return ast, nil
}

// findParseError returns the first ERROR node in the tree, depth-first, or
// nil if the parse was clean.
func findParseError(node *ts.Node) *ts.Node {
	if node.IsError() {
		return node
	}
	for i := range node.ChildCount() {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if err := findParseError(child); err != nil {
			return err
		}
	}
	return nil
}

// walkStatements recurses over a stylesheet/block's statements, collecting
// @import, @value, and rule sets, and descending into @media/@supports
// bodies so nested rules are still discovered.
func walkStatements(node *ts.Node, code []byte, positions *PositionMapper, ast *AST) {
	for i := range node.NamedChildCount() {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case "import_statement":
			if spec, ok := extractImportSpecifier(child, code); ok {
				ast.Imports = append(ast.Imports, ImportOccurrence{Specifier: spec})
			}

		case "at_rule":
			collectAtValue(child, code, positions, ast)

		case "rule_set":
			collectRuleSet(child, code, positions, ast)
			if block := findBlock(child); block != nil {
				collectComposes(block, code, ast)
				walkStatements(block, code, positions, ast)
			}

		case "media_statement", "supports_statement":
			if block := findBlock(child); block != nil {
				walkStatements(block, code, positions, ast)
			}
		}
	}
}

// findBlock returns the first "block" child of node, searching every
// child (not just named ones), since the brace block isn't always a named
// field in the grammar's at_rule/rule_set productions.
func findBlock(node *ts.Node) *ts.Node {
	for i := range node.ChildCount() {
		child := node.Child(i)
		if child != nil && child.Kind() == "block" {
			return child
		}
	}
	return nil
}

// extractImportSpecifier pulls the quoted or url(...) argument out of an
// @import at-rule's raw text.
func extractImportSpecifier(node *ts.Node, code []byte) (string, bool) {
	text := node.Utf8Text(code)
	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
	body = strings.TrimPrefix(body, "@import")
	body = strings.TrimSpace(body)

	if strings.HasPrefix(strings.ToLower(body), "url(") {
		close := strings.Index(body, ")")
		if close < 0 {
			return "", false
		}
		inner := strings.TrimSpace(body[len("url(") : close])
		return unquote(inner), true
	}

	if len(body) == 0 {
		return "", false
	}
	quote := body[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	end := strings.IndexByte(body[1:], quote)
	if end < 0 {
		return "", false
	}
	return body[1 : 1+end], true
}

// collectAtValue recognizes a generic at_rule as "@value ..." and parses
// its prelude; any other at-rule (e.g. @charset, @font-face) is ignored.
func collectAtValue(node *ts.Node, code []byte, positions *PositionMapper, ast *AST) {
	text := node.Utf8Text(code)
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToLower(trimmed), "@value") {
		return
	}

	prelude := trimmed[len("@value"):]
	prelude = strings.TrimSuffix(strings.TrimSpace(prelude), ";")

	pos := node.StartPosition()
	ast.Values = append(ast.Values, ValueOccurrence{
		AtValue:  ParseAtValue(prelude),
		Location: positions.Locate(pos.Row, pos.Column),
	})
}

// collectRuleSet walks a rule_set's selector list for class selectors,
// tracking whether each sits inside a :global(...) wrapper.
func collectRuleSet(node *ts.Node, code []byte, positions *PositionMapper, ast *AST) {
	selectors := node.ChildByFieldName("selectors")
	if selectors == nil {
		for i := range node.ChildCount() {
			if c := node.Child(i); c != nil && c.Kind() == "selectors" {
				selectors = c
				break
			}
		}
	}
	if selectors == nil {
		return
	}
	walkSelectors(selectors, code, false, positions, ast)
}

// collectComposes scans a rule_set's block for "composes: ... from '...'"
// declarations. It only cares about the cross-file target: which classes
// are composed is irrelevant to dependency tracking, a composes without
// "from" records nothing, and composes never yields a Token itself.
func collectComposes(block *ts.Node, code []byte, ast *AST) {
	for i := range block.NamedChildCount() {
		child := block.NamedChild(i)
		if child == nil || child.Kind() != "declaration" {
			continue
		}

		text := strings.TrimSpace(child.Utf8Text(code))
		if !strings.HasPrefix(strings.ToLower(text), "composes") {
			continue
		}

		_, value, found := strings.Cut(text, ":")
		if !found {
			continue
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ";")

		if spec, ok := composesFromTarget(value); ok {
			ast.Composes = append(ast.Composes, ComposesOccurrence{Specifier: spec})
		}
	}
}

// composesFromTarget extracts the quoted specifier following " from " in a
// composes declaration's value, e.g. "base from './base.css'".
func composesFromTarget(value string) (string, bool) {
	idx := strings.LastIndex(strings.ToLower(value), " from ")
	if idx < 0 {
		return "", false
	}
	return unquote(value[idx+len(" from "):]), true
}

func walkSelectors(node *ts.Node, code []byte, insideGlobal bool, positions *PositionMapper, ast *AST) {
	switch node.Kind() {
	case "pseudo_class_selector":
		text := node.Utf8Text(code)
		isGlobal := strings.HasPrefix(strings.ToLower(text), ":global")
		for i := range node.NamedChildCount() {
			walkSelectors(node.NamedChild(i), code, insideGlobal || isGlobal, positions, ast)
		}

	case "class_selector":
		// A compound selector such as ".a.b" nests ".a" as this node's
		// leading selector; walk it first so every class is collected, in
		// document order.
		for i := range node.NamedChildCount() {
			if child := node.NamedChild(i); child != nil && child.Kind() != "class_name" {
				walkSelectors(child, code, insideGlobal, positions, ast)
			}
		}
		name := classSelectorName(node, code)
		if name == "" {
			return
		}
		pos := node.StartPosition()
		ast.ClassSelectors = append(ast.ClassSelectors, ClassSelectorOccurrence{
			Name:     name,
			IsGlobal: insideGlobal,
			Location: positions.Locate(pos.Row, pos.Column),
		})

	default:
		for i := range node.NamedChildCount() {
			walkSelectors(node.NamedChild(i), code, insideGlobal, positions, ast)
		}
	}
}

// classSelectorName extracts the bare name (without the leading ".") from
// a class_selector node.
func classSelectorName(node *ts.Node, code []byte) string {
	for i := range node.NamedChildCount() {
		if child := node.NamedChild(i); child != nil && child.Kind() == "class_name" {
			return child.Utf8Text(code)
		}
	}
	return strings.TrimPrefix(node.Utf8Text(code), ".")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
