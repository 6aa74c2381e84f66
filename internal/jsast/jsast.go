// Package jsast parses JavaScript with tree-sitter and walks the result.
package jsast

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Node types of the tree-sitter JavaScript grammar used by this package.
const (
	NodeProgram              = "program"
	NodeCallExpression       = "call_expression"
	NodeMemberExpression     = "member_expression"
	NodeIdentifier           = "identifier"
	NodePropertyIdentifier   = "property_identifier"
	NodeArguments            = "arguments"
	NodeString               = "string"
	NodeTemplateString       = "template_string"
	NodeTemplateSubstitution = "template_substitution"
	NodeComment              = "comment"
	NodeParenthesized        = "parenthesized_expression"
	NodeExportStatement      = "export_statement"
	NodeFunctionDeclaration  = "function_declaration"
	NodeGeneratorDeclaration = "generator_function_declaration"
	NodeArrowFunction        = "arrow_function"
	NodeFunctionExpression   = "function_expression"
	NodeGeneratorFunction    = "generator_function"

	// nodeFunctionLegacy is the name older grammar versions use for
	// function expressions.
	nodeFunctionLegacy = "function"
)

// ErrInvalidContent is returned for sources that are not valid UTF-8.
var ErrInvalidContent = errors.New("source is not valid UTF-8")

// File is a parsed JavaScript source file. Close releases the tree.
type File struct {
	Path string
	Src  []byte
	Root *sitter.Node

	tree *sitter.Tree
}

// Parse parses src. Syntax errors do not fail parsing; tree-sitter keeps
// going and marks the broken region (see [File.HasSyntaxErrors]).
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled before start: %w", path, err)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse %s: %w", path, err)
	}

	return &File{
		Path: path,
		Src:  src,
		Root: tree.RootNode(),
		tree: tree,
	}, nil
}

// Close releases the syntax tree.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// HasSyntaxErrors reports whether tree-sitter had to recover from errors.
func (f *File) HasSyntaxErrors() bool {
	return f.Root.HasError()
}

// Text returns the verbatim source text of n.
func (f *File) Text(n *sitter.Node) string {
	return n.Content(f.Src)
}

// Position is a 1-based line and column. Columns count UTF-16 code
// units, as JavaScript tooling does.
type Position struct {
	Line   int
	Column int
}

// Position returns the start position of n.
func (f *File) Position(n *sitter.Node) Position {
	p := n.StartPoint()
	start := int(n.StartByte())
	lineStart := start - int(p.Column)

	column := 0
	for _, r := range string(f.Src[lineStart:start]) {
		column += utf16.RuneLen(r)
	}

	return Position{Line: int(p.Row) + 1, Column: column + 1}
}

// Key identifies a node within one tree. Keys are comparable.
type Key struct {
	Type       string
	Start, End uint32
}

// KeyOf returns the key of n.
func KeyOf(n *sitter.Node) Key {
	return Key{Type: n.Type(), Start: n.StartByte(), End: n.EndByte()}
}

// Walk visits root and its named descendants in source order. fn receives
// the ancestors of each node, outermost first; the slice is reused, so fn
// must copy it to keep it. Returning false skips the node's children.
func Walk(root *sitter.Node, fn func(n *sitter.Node, stack []*sitter.Node) bool) {
	if !fn(root, nil) {
		return
	}

	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	if !cursor.GoToFirstChild() {
		return
	}

	stack := []*sitter.Node{root}
	for {
		n := cursor.CurrentNode()
		if n.IsNamed() && fn(n, stack) && cursor.GoToFirstChild() {
			stack = append(stack, n)
			continue
		}

		for !cursor.GoToNextSibling() {
			if len(stack) == 1 {
				return
			}
			cursor.GoToParent()
			stack = stack[:len(stack)-1]
		}
	}
}

// namedChildren returns the named children of n in one pass.
func namedChildren(n *sitter.Node) []*sitter.Node {
	cursor := sitter.NewTreeCursor(n)
	defer cursor.Close()

	var out []*sitter.Node
	for ok := cursor.GoToFirstChild(); ok; ok = cursor.GoToNextSibling() {
		if child := cursor.CurrentNode(); child.IsNamed() {
			out = append(out, child)
		}
	}

	return out
}

// Unparen strips enclosing parentheses from an expression node.
func Unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == NodeParenthesized {
		var inner *sitter.Node
		for _, child := range namedChildren(n) {
			if child.Type() != NodeComment {
				inner = child
				break
			}
		}
		if inner == nil {
			return n
		}
		n = inner
	}

	return n
}

// IsFunction reports whether n bounds a function scope: function
// declarations (including generators), arrow functions, and the anonymous
// function of an export default declaration. parent is the node enclosing
// n on the walk stack, nil at the root.
func IsFunction(n, parent *sitter.Node) bool {
	if !n.IsNamed() {
		return false
	}

	switch n.Type() {
	case NodeFunctionDeclaration, NodeGeneratorDeclaration, NodeArrowFunction:
		return true
	case NodeFunctionExpression, NodeGeneratorFunction, nodeFunctionLegacy:
		return parent != nil && parent.Type() == NodeExportStatement
	default:
		return false
	}
}

// MemberCall is a call expression of the shape object.property(arguments).
type MemberCall struct {
	Node     *sitter.Node
	Object   *sitter.Node
	Property string
	Args     []*sitter.Node
}

// AsMemberCall matches n against object.property(...). Parentheses around
// the callee, the object and the arguments are ignored. Computed members
// (object["property"]) and tagged templates do not match.
func AsMemberCall(n *sitter.Node, src []byte) (MemberCall, bool) {
	if n.Type() != NodeCallExpression {
		return MemberCall{}, false
	}

	callee := Unparen(n.ChildByFieldName("function"))
	if callee == nil || callee.Type() != NodeMemberExpression {
		return MemberCall{}, false
	}

	property := callee.ChildByFieldName("property")
	if property == nil || property.Type() != NodePropertyIdentifier {
		return MemberCall{}, false
	}

	args := n.ChildByFieldName("arguments")
	if args == nil || args.Type() != NodeArguments {
		return MemberCall{}, false
	}

	return MemberCall{
		Node:     n,
		Object:   Unparen(callee.ChildByFieldName("object")),
		Property: property.Content(src),
		Args:     arguments(args),
	}, true
}

func arguments(args *sitter.Node) []*sitter.Node {
	var out []*sitter.Node

	for _, child := range namedChildren(args) {
		if child.Type() == NodeComment {
			continue
		}
		out = append(out, Unparen(child))
	}

	return out
}

// ObjectName returns the identifier the call is made on. ok is false when
// the object is anything but a bare identifier.
func (c MemberCall) ObjectName(src []byte) (string, bool) {
	if c.Object == nil || c.Object.Type() != NodeIdentifier {
		return "", false
	}

	return c.Object.Content(src), true
}
