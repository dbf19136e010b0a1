package ast_test

import (
	"testing"

	"github.com/benbjohnson/css/ast"
)

// sample builds a stylesheet that touches every top-level rule kind, every
// selector member kind, and the calc() math hierarchy, so Clone/Equal
// coverage exercises the whole closed sum type.
func sample() *ast.Stylesheet {
	borderDecl := &ast.Declaration{
		Name: "border-top",
		Value: &ast.Expression{
			Members: []ast.ExpressionMember{
				&ast.TermSimple{Kind: ast.TermDimension, Raw: "2px", Number: 2, Unit: "px"},
			},
		},
	}
	widthDecl := &ast.Declaration{
		Name:      "width",
		Important: true,
		Value: &ast.Expression{
			Members: []ast.ExpressionMember{
				&ast.Math{
					Members: []ast.MathMember{
						&ast.MathProduct{Members: []ast.MathProductMember{
							&ast.MathUnit{Value: &ast.TermSimple{Kind: ast.TermNumber, Raw: "4", Number: 4}},
						}},
						&ast.SumOperator{Op: '+'},
						&ast.MathProduct{Members: []ast.MathProductMember{
							&ast.MathUnit{Value: &ast.TermSimple{Kind: ast.TermNumber, Raw: "5", Number: 5}},
						}},
					},
				},
			},
		},
	}

	style := &ast.StyleRule{
		Selectors: []*ast.Selector{
			{
				Members: []ast.SelectorMember{
					&ast.ElementSelector{Name: "a"},
					&ast.Combinator{Kind: ast.AdjacentSibling},
					&ast.ClassSelector{Name: "b"},
					&ast.AttributeSelector{Name: "href", Op: ast.AttrPrefixMatch, Value: "https"},
					&ast.FunctionalPseudoSelector{
						Name: "not",
						Arguments: []*ast.Selector{
							{Members: []ast.SelectorMember{&ast.IDSelector{Name: "x"}}},
						},
					},
					&ast.NthExpression{Name: "nth-child", A: 2, B: 1},
					&ast.PseudoElementSelector{Name: "before"},
					&ast.UniversalSelector{},
				},
			},
		},
		Declarations: []*ast.Declaration{borderDecl, widthDecl},
	}

	media := &ast.MediaRule{
		Queries: []*ast.MediaQuery{
			{
				Modifier: ast.OnlyModifier,
				Medium:   "screen",
				Features: []*ast.MediaFeature{
					{Name: "min-width", Value: &ast.Expression{Members: []ast.ExpressionMember{
						&ast.TermSimple{Kind: ast.TermDimension, Raw: "600px", Number: 600, Unit: "px"},
					}}},
				},
			},
		},
		Rules: []ast.TopLevelRule{style},
	}

	supports := &ast.SupportsRule{
		Condition: &ast.SupportsCondition{
			Members: []ast.SupportsMember{
				&ast.SupportsDeclaration{Declaration: &ast.Declaration{Name: "display", Value: &ast.Expression{
					Members: []ast.ExpressionMember{&ast.TermSimple{Kind: ast.TermIdent, Raw: "flex"}},
				}}},
				&ast.SupportsOperator{Kind: ast.SupportsAnd},
				&ast.SupportsNot{Condition: &ast.SupportsCondition{
					Members: []ast.SupportsMember{
						&ast.SupportsGroup{Condition: &ast.SupportsCondition{
							Members: []ast.SupportsMember{
								&ast.SupportsDeclaration{Declaration: &ast.Declaration{Name: "color", Value: &ast.Expression{
									Members: []ast.ExpressionMember{&ast.TermSimple{Kind: ast.TermIdent, Raw: "red"}},
								}}},
							},
						}},
					},
				}},
			},
		},
		Rules: []ast.TopLevelRule{media},
	}

	keyframes := &ast.KeyframesRule{
		AtKeyword: "keyframes",
		Name:      "fade",
		Blocks: []*ast.KeyframesBlock{
			{Selectors: []string{"from"}, Declarations: []*ast.Declaration{
				{Name: "opacity", Value: &ast.Expression{Members: []ast.ExpressionMember{
					&ast.TermSimple{Kind: ast.TermNumber, Raw: "0", Number: 0},
				}}},
			}},
			{Selectors: []string{"to"}, Declarations: []*ast.Declaration{
				{Name: "opacity", Value: &ast.Expression{Members: []ast.ExpressionMember{
					&ast.TermSimple{Kind: ast.TermNumber, Raw: "1", Number: 1},
				}}},
			}},
		},
	}

	page := &ast.PageRule{
		Selectors:    []string{":first"},
		Declarations: []*ast.Declaration{{Name: "margin", Value: &ast.Expression{}}},
		MarginBlocks: []*ast.PageMarginBlock{
			{Name: "top-left-corner", Declarations: []*ast.Declaration{{Name: "content"}}},
		},
	}

	return &ast.Stylesheet{
		Rules: []ast.TopLevelRule{
			&ast.ImportRule{URL: "reset.css", Quoted: true},
			&ast.NamespaceRule{Prefix: "svg", URL: "http://www.w3.org/2000/svg"},
			style,
			supports,
			page,
			&ast.FontFaceRule{Declarations: []*ast.Declaration{{Name: "font-family"}}},
			keyframes,
			&ast.ViewportRule{Declarations: []*ast.Declaration{{Name: "width"}}},
			&ast.UnknownRule{Name: "unsupported", Prelude: "foo", HasBlock: false},
		},
	}
}

func TestCloneEqual(t *testing.T) {
	orig := sample()
	clone := ast.Clone(orig)

	if !ast.Equal(orig, clone) {
		t.Fatal("clone is not structurally equal to original")
	}

	// Mutating the clone must never affect the original.
	cloneSheet := clone.(*ast.Stylesheet)
	styleClone := cloneSheet.Rules[2].(*ast.StyleRule)
	styleClone.Declarations[0].Name = "border-bottom"

	origStyle := orig.Rules[2].(*ast.StyleRule)
	if origStyle.Declarations[0].Name != "border-top" {
		t.Fatal("mutation on clone leaked into original")
	}
	if ast.Equal(orig, clone) {
		t.Fatal("clone and original compare equal after divergent mutation")
	}
}

func TestCloneNil(t *testing.T) {
	if ast.Clone(nil) != nil {
		t.Fatal("Clone(nil) should return nil")
	}
}

func TestEqualNilExpression(t *testing.T) {
	a := &ast.Declaration{Name: "content"}
	b := &ast.Declaration{Name: "content"}
	if !ast.Equal(a, b) {
		t.Fatal("declarations with nil Value should compare equal")
	}

	b.Value = &ast.Expression{}
	if ast.Equal(a, b) {
		t.Fatal("nil Value should not compare equal to a non-nil empty Expression")
	}
}

func TestOutOfOrderRule(t *testing.T) {
	s := &ast.Stylesheet{}
	s.InsertRule(&ast.StyleRule{})
	if !s.OutOfOrderRule(&ast.ImportRule{}) {
		t.Fatal("expected @import after a style rule to be reported out of order")
	}
	if s.OutOfOrderRule(&ast.StyleRule{}) {
		t.Fatal("style rule following a style rule is never out of order")
	}
}

// Compile-time interface coverage: every concrete rule/selector/expression
// kind must satisfy its closed sum type.
var (
	_ ast.TopLevelRule      = (*ast.ImportRule)(nil)
	_ ast.TopLevelRule      = (*ast.NamespaceRule)(nil)
	_ ast.TopLevelRule      = (*ast.StyleRule)(nil)
	_ ast.TopLevelRule      = (*ast.MediaRule)(nil)
	_ ast.TopLevelRule      = (*ast.PageRule)(nil)
	_ ast.TopLevelRule      = (*ast.FontFaceRule)(nil)
	_ ast.TopLevelRule      = (*ast.KeyframesRule)(nil)
	_ ast.TopLevelRule      = (*ast.ViewportRule)(nil)
	_ ast.TopLevelRule      = (*ast.SupportsRule)(nil)
	_ ast.TopLevelRule      = (*ast.UnknownRule)(nil)
	_ ast.SelectorMember    = (*ast.ElementSelector)(nil)
	_ ast.SelectorMember    = (*ast.UniversalSelector)(nil)
	_ ast.SelectorMember    = (*ast.IDSelector)(nil)
	_ ast.SelectorMember    = (*ast.ClassSelector)(nil)
	_ ast.SelectorMember    = (*ast.AttributeSelector)(nil)
	_ ast.SelectorMember    = (*ast.PseudoClassSelector)(nil)
	_ ast.SelectorMember    = (*ast.PseudoElementSelector)(nil)
	_ ast.SelectorMember    = (*ast.FunctionalPseudoSelector)(nil)
	_ ast.SelectorMember    = (*ast.NthExpression)(nil)
	_ ast.SelectorMember    = (*ast.Combinator)(nil)
	_ ast.ExpressionMember  = (*ast.TermSimple)(nil)
	_ ast.ExpressionMember  = (*ast.TermURI)(nil)
	_ ast.ExpressionMember  = (*ast.Function)(nil)
	_ ast.ExpressionMember  = (*ast.Math)(nil)
	_ ast.ExpressionMember  = (*ast.Operator)(nil)
	_ ast.MathMember        = (*ast.MathProduct)(nil)
	_ ast.MathMember        = (*ast.SumOperator)(nil)
	_ ast.MathProductMember = (*ast.MathUnit)(nil)
	_ ast.MathProductMember = (*ast.MathOperator)(nil)
	_ ast.SupportsMember    = (*ast.SupportsDeclaration)(nil)
	_ ast.SupportsMember    = (*ast.SupportsNot)(nil)
	_ ast.SupportsMember    = (*ast.SupportsOperator)(nil)
	_ ast.SupportsMember    = (*ast.SupportsGroup)(nil)
)
