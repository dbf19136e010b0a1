// Package visit implements depth-first traversal of an ast.Stylesheet
// (spec.md §4.5 "Visitor contract"). The teacher has no traversal concept of
// its own — printer.go is the closest analog, a single recursive
// dispatcher — so this package is built fresh in that dispatch idiom, the
// way the standard library's own go/ast.Walk pairs a Visitor interface with
// a free Walk function.
package visit

import "github.com/benbjohnson/css/ast"

// Visitor receives begin/end callbacks for every rule kind, for each
// selector, for each declaration, and for URL terms. Begin callbacks fire
// pre-order, end callbacks post-order. Embed NopVisitor to implement only
// the callbacks a particular visitor needs.
type Visitor interface {
	BeginStylesheet(*ast.Stylesheet)
	EndStylesheet(*ast.Stylesheet)

	BeginImportRule(*ast.ImportRule)
	EndImportRule(*ast.ImportRule)
	BeginNamespaceRule(*ast.NamespaceRule)
	EndNamespaceRule(*ast.NamespaceRule)
	BeginStyleRule(*ast.StyleRule)
	EndStyleRule(*ast.StyleRule)
	BeginMediaRule(*ast.MediaRule)
	EndMediaRule(*ast.MediaRule)
	BeginPageRule(*ast.PageRule)
	EndPageRule(*ast.PageRule)
	BeginFontFaceRule(*ast.FontFaceRule)
	EndFontFaceRule(*ast.FontFaceRule)
	BeginKeyframesRule(*ast.KeyframesRule)
	EndKeyframesRule(*ast.KeyframesRule)
	BeginViewportRule(*ast.ViewportRule)
	EndViewportRule(*ast.ViewportRule)
	BeginSupportsRule(*ast.SupportsRule)
	EndSupportsRule(*ast.SupportsRule)
	BeginUnknownRule(*ast.UnknownRule)
	EndUnknownRule(*ast.UnknownRule)

	BeginSelector(*ast.Selector)
	EndSelector(*ast.Selector)

	// Declaration receives each declaration along with the top-level rule
	// that encloses it; enclosing is nil for declaration-list fragments
	// parsed standalone (spec.md §4.5).
	Declaration(decl *ast.Declaration, enclosing ast.TopLevelRule)

	// URLTerm receives every URL term found in an @import URL or a
	// declaration value expression.
	URLTerm(uri *ast.TermURI, enclosing ast.TopLevelRule)
}

// NopVisitor implements Visitor with every callback a no-op. Embed it to
// build a visitor that only overrides the callbacks it cares about.
type NopVisitor struct{}

func (NopVisitor) BeginStylesheet(*ast.Stylesheet) {}
func (NopVisitor) EndStylesheet(*ast.Stylesheet)   {}

func (NopVisitor) BeginImportRule(*ast.ImportRule) {}
func (NopVisitor) EndImportRule(*ast.ImportRule)   {}
func (NopVisitor) BeginNamespaceRule(*ast.NamespaceRule) {}
func (NopVisitor) EndNamespaceRule(*ast.NamespaceRule)   {}
func (NopVisitor) BeginStyleRule(*ast.StyleRule) {}
func (NopVisitor) EndStyleRule(*ast.StyleRule)   {}
func (NopVisitor) BeginMediaRule(*ast.MediaRule) {}
func (NopVisitor) EndMediaRule(*ast.MediaRule)   {}
func (NopVisitor) BeginPageRule(*ast.PageRule) {}
func (NopVisitor) EndPageRule(*ast.PageRule)   {}
func (NopVisitor) BeginFontFaceRule(*ast.FontFaceRule) {}
func (NopVisitor) EndFontFaceRule(*ast.FontFaceRule)   {}
func (NopVisitor) BeginKeyframesRule(*ast.KeyframesRule) {}
func (NopVisitor) EndKeyframesRule(*ast.KeyframesRule)   {}
func (NopVisitor) BeginViewportRule(*ast.ViewportRule) {}
func (NopVisitor) EndViewportRule(*ast.ViewportRule)   {}
func (NopVisitor) BeginSupportsRule(*ast.SupportsRule) {}
func (NopVisitor) EndSupportsRule(*ast.SupportsRule)   {}
func (NopVisitor) BeginUnknownRule(*ast.UnknownRule) {}
func (NopVisitor) EndUnknownRule(*ast.UnknownRule)   {}

func (NopVisitor) BeginSelector(*ast.Selector) {}
func (NopVisitor) EndSelector(*ast.Selector)   {}

func (NopVisitor) Declaration(*ast.Declaration, ast.TopLevelRule)  {}
func (NopVisitor) URLTerm(*ast.TermURI, ast.TopLevelRule) {}

// Walk traverses ss depth-first, invoking v's callbacks pre-order (Begin*)
// and post-order (End*) around each node. Mutating a subtree below the node
// currently being visited is safe and may be observed later in the same
// traversal (spec.md §4.4 "Modification during iteration"); mutating
// siblings or ancestors is not supported.
func Walk(ss *ast.Stylesheet, v Visitor) {
	v.BeginStylesheet(ss)
	for _, r := range ss.Rules {
		walkRule(r, v)
	}
	v.EndStylesheet(ss)
}

func walkRule(r ast.TopLevelRule, v Visitor) {
	switch rule := r.(type) {
	case *ast.ImportRule:
		v.BeginImportRule(rule)
		uri := &ast.TermURI{Value: rule.URL}
		v.URLTerm(uri, rule)
		rule.URL = uri.Value
		for _, mq := range rule.Media {
			walkMediaQueryExpressions(mq, rule, v)
		}
		v.EndImportRule(rule)
	case *ast.NamespaceRule:
		v.BeginNamespaceRule(rule)
		v.EndNamespaceRule(rule)
	case *ast.StyleRule:
		v.BeginStyleRule(rule)
		for _, sel := range rule.Selectors {
			walkSelector(sel, v)
		}
		for _, d := range rule.Declarations {
			walkDeclaration(d, rule, v)
		}
		v.EndStyleRule(rule)
	case *ast.MediaRule:
		v.BeginMediaRule(rule)
		for _, mq := range rule.Queries {
			walkMediaQueryExpressions(mq, rule, v)
		}
		for _, nested := range rule.Rules {
			walkRule(nested, v)
		}
		v.EndMediaRule(rule)
	case *ast.PageRule:
		v.BeginPageRule(rule)
		for _, d := range rule.Declarations {
			walkDeclaration(d, rule, v)
		}
		for _, mb := range rule.MarginBlocks {
			for _, d := range mb.Declarations {
				walkDeclaration(d, rule, v)
			}
		}
		v.EndPageRule(rule)
	case *ast.FontFaceRule:
		v.BeginFontFaceRule(rule)
		for _, d := range rule.Declarations {
			walkDeclaration(d, rule, v)
		}
		v.EndFontFaceRule(rule)
	case *ast.KeyframesRule:
		v.BeginKeyframesRule(rule)
		for _, b := range rule.Blocks {
			for _, d := range b.Declarations {
				walkDeclaration(d, rule, v)
			}
		}
		v.EndKeyframesRule(rule)
	case *ast.ViewportRule:
		v.BeginViewportRule(rule)
		for _, d := range rule.Declarations {
			walkDeclaration(d, rule, v)
		}
		v.EndViewportRule(rule)
	case *ast.SupportsRule:
		v.BeginSupportsRule(rule)
		walkSupportsDeclarations(rule.Condition, rule, v)
		for _, nested := range rule.Rules {
			walkRule(nested, v)
		}
		v.EndSupportsRule(rule)
	case *ast.UnknownRule:
		v.BeginUnknownRule(rule)
		v.EndUnknownRule(rule)
	}
}

func walkSelector(sel *ast.Selector, v Visitor) {
	v.BeginSelector(sel)
	for _, m := range sel.Members {
		switch mv := m.(type) {
		case *ast.FunctionalPseudoSelector:
			for _, arg := range mv.Arguments {
				walkSelector(arg, v)
			}
		case *ast.NthExpression:
			for _, of := range mv.Of {
				walkSelector(of, v)
			}
		}
	}
	v.EndSelector(sel)
}

func walkDeclaration(d *ast.Declaration, enclosing ast.TopLevelRule, v Visitor) {
	v.Declaration(d, enclosing)
	walkExpressionURLs(d.Value, enclosing, v)
}

func walkExpressionURLs(e *ast.Expression, enclosing ast.TopLevelRule, v Visitor) {
	if e == nil {
		return
	}
	for _, m := range e.Members {
		switch mv := m.(type) {
		case *ast.TermURI:
			v.URLTerm(mv, enclosing)
		case *ast.Function:
			walkExpressionURLs(mv.Arguments, enclosing, v)
		case *ast.Math:
			walkMathURLs(mv, enclosing, v)
		}
	}
}

func walkMathURLs(m *ast.Math, enclosing ast.TopLevelRule, v Visitor) {
	for _, mm := range m.Members {
		p, ok := mm.(*ast.MathProduct)
		if !ok {
			continue
		}
		for _, pm := range p.Members {
			u, ok := pm.(*ast.MathUnit)
			if !ok {
				continue
			}
			if u.Group != nil {
				walkMathURLs(u.Group, enclosing, v)
				continue
			}
			switch uv := u.Value.(type) {
			case *ast.TermURI:
				v.URLTerm(uv, enclosing)
			case *ast.Function:
				walkExpressionURLs(uv.Arguments, enclosing, v)
			}
		}
	}
}

func walkMediaQueryExpressions(mq *ast.MediaQuery, enclosing ast.TopLevelRule, v Visitor) {
	for _, f := range mq.Features {
		walkExpressionURLs(f.Value, enclosing, v)
	}
}

func walkSupportsDeclarations(c *ast.SupportsCondition, enclosing ast.TopLevelRule, v Visitor) {
	if c == nil {
		return
	}
	for _, m := range c.Members {
		switch mv := m.(type) {
		case *ast.SupportsDeclaration:
			walkDeclaration(mv.Declaration, enclosing, v)
		case *ast.SupportsNot:
			walkSupportsDeclarations(mv.Condition, enclosing, v)
		case *ast.SupportsGroup:
			walkSupportsDeclarations(mv.Condition, enclosing, v)
		}
	}
}
