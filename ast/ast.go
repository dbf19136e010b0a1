// Package ast implements the in-memory CSS abstract syntax tree: the
// stylesheet, rules, selectors, declarations, and expressions that the
// parser builds and the writer renders back to text.
package ast

import "github.com/benbjohnson/css/token"

// Pos is an inclusive source position, reusing the lexer's line/column pair.
type Pos = token.Pos

// Span records the half-open source range a node covers: Start is inclusive,
// End is exclusive. A zero Span means the node carries no location; nodes
// built programmatically and nodes built by this module's parser both carry
// a zero Span.
type Span struct {
	Start Pos
	End   Pos
}

// Node is implemented by every AST type. isNode() closes the hierarchy so that
// external packages cannot add their own variants, matching the closed sum
// types spec.md §3 describes.
type Node interface {
	isNode()
	Span() Span
}

// node embeds in every concrete type to supply Span() and the closing
// isNode() marker in one place.
type node struct {
	span Span
}

func (n node) isNode() {}

func (n node) Span() Span { return n.span }

// SetSpan assigns the node's source range. The parser in this module does
// not call it, so parsed nodes keep a zero Span.
func (n *node) SetSpan(s Span) { n.span = s }

// Stylesheet is the top-level container: an ordered, insertion-stable list
// of top-level rules (spec.md §3 "Top-level container").
type Stylesheet struct {
	node
	Rules []TopLevelRule
}

// InsertRule appends a rule to the stylesheet. Callers needing strict
// @import/@namespace-before-style-rules ordering should check
// (*Stylesheet).OutOfOrderRule first.
func (s *Stylesheet) InsertRule(r TopLevelRule) {
	s.Rules = append(s.Rules, r)
}

// OutOfOrderRule reports whether appending r next would place an
// ImportRule or NamespaceRule after a StyleRule has already appeared,
// per spec.md §3's ordering invariant. Callers in strict mode should treat
// a true result as a recoverable error; tolerant callers may ignore it.
func (s *Stylesheet) OutOfOrderRule(r TopLevelRule) bool {
	switch r.(type) {
	case *ImportRule, *NamespaceRule:
		for _, existing := range s.Rules {
			if _, ok := existing.(*StyleRule); ok {
				return true
			}
		}
	}
	return false
}

// TopLevelRule is the closed sum type of spec.md §3's top-level rule kinds.
type TopLevelRule interface {
	Node
	topLevelRule()
}

func (*ImportRule) topLevelRule()    {}
func (*NamespaceRule) topLevelRule() {}
func (*StyleRule) topLevelRule()     {}
func (*MediaRule) topLevelRule()     {}
func (*PageRule) topLevelRule()      {}
func (*FontFaceRule) topLevelRule()  {}
func (*KeyframesRule) topLevelRule() {}
func (*ViewportRule) topLevelRule()  {}
func (*SupportsRule) topLevelRule()  {}
func (*UnknownRule) topLevelRule()   {}
