package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/writer"
)

func simpleDecl(name, raw string) *ast.Declaration {
	return &ast.Declaration{
		Name:  name,
		Value: &ast.Expression{Members: []ast.ExpressionMember{&ast.TermSimple{Kind: ast.TermIdent, Raw: raw}}},
	}
}

func TestWriter_StyleRule_Pretty(t *testing.T) {
	rule := &ast.StyleRule{
		Selectors: []*ast.Selector{
			{Members: []ast.SelectorMember{&ast.ElementSelector{Name: "div"}, &ast.ClassSelector{Name: "box"}}},
		},
		Declarations: []*ast.Declaration{simpleDecl("color", "red")},
	}
	w := writer.New()
	out, err := w.String(rule)
	require.NoError(t, err)
	assert.Equal(t, "div.box {\n  color: red;\n}", out)
}

func TestWriter_StyleRule_Optimized(t *testing.T) {
	rule := &ast.StyleRule{
		Selectors:    []*ast.Selector{{Members: []ast.SelectorMember{&ast.ElementSelector{Name: "div"}}}},
		Declarations: []*ast.Declaration{simpleDecl("color", "red"), simpleDecl("display", "block")},
	}
	w := writer.New()
	w.Settings.OptimizedOutput = true
	out, err := w.String(rule)
	require.NoError(t, err)
	assert.Equal(t, "div{color:red;display:block}", out)
}

func TestWriter_RemoveUnnecessaryCode_EmptyRule(t *testing.T) {
	ss := &ast.Stylesheet{Rules: []ast.TopLevelRule{
		&ast.StyleRule{Selectors: []*ast.Selector{{Members: []ast.SelectorMember{&ast.ElementSelector{Name: "p"}}}}},
	}}
	w := writer.New()
	w.Settings.RemoveUnnecessaryCode = true
	out, err := w.String(ss)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestWriter_ImportRule_WithMedia(t *testing.T) {
	rule := &ast.ImportRule{
		URL:    "theme.css",
		Quoted: true,
		Media:  []*ast.MediaQuery{{Medium: "screen"}},
	}
	w := writer.New()
	out, err := w.String(rule)
	require.NoError(t, err)
	assert.Equal(t, `@import "theme.css", screen;`, out)
}

func TestWriter_CalcExpression(t *testing.T) {
	decl := &ast.Declaration{
		Name: "width",
		Value: &ast.Expression{Members: []ast.ExpressionMember{
			&ast.Math{Members: []ast.MathMember{
				&ast.MathProduct{Members: []ast.MathProductMember{
					&ast.MathUnit{Value: &ast.TermSimple{Kind: ast.TermPercentage, Raw: "100%"}},
				}},
				&ast.SumOperator{Op: '-'},
				&ast.MathProduct{Members: []ast.MathProductMember{
					&ast.MathUnit{Value: &ast.TermSimple{Kind: ast.TermDimension, Raw: "10px"}},
				}},
			}},
		}},
	}
	w := writer.New()
	out, err := w.String(decl)
	require.NoError(t, err)
	assert.Equal(t, "width: calc(100% - 10px)", out)
}

func TestWriter_Css21Compat_RejectsCalc(t *testing.T) {
	decl := &ast.Declaration{
		Name:  "width",
		Value: &ast.Expression{Members: []ast.ExpressionMember{&ast.Math{}}},
	}
	w := writer.New()
	w.Settings.Css21Compat = true
	_, err := w.String(decl)
	require.Error(t, err)
	var werr *writer.WriterError
	require.ErrorAs(t, err, &werr)
}

func TestWriter_Css21Compat_RejectsSupports(t *testing.T) {
	ss := &ast.Stylesheet{Rules: []ast.TopLevelRule{
		&ast.SupportsRule{Condition: &ast.SupportsCondition{}},
	}}
	w := writer.New()
	w.Settings.Css21Compat = true
	_, err := w.String(ss)
	require.Error(t, err)
}

func TestWriter_NamespaceRuleFilter(t *testing.T) {
	ss := &ast.Stylesheet{Rules: []ast.TopLevelRule{
		&ast.NamespaceRule{Prefix: "svg", URL: "http://www.w3.org/2000/svg"},
	}}
	w := writer.New()
	w.Settings.WriteNamespaceRules = false
	out, err := w.String(ss)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestWriter_AttributeSelector_CaseFlag(t *testing.T) {
	sel := &ast.Selector{Members: []ast.SelectorMember{
		&ast.AttributeSelector{Name: "type", Op: ast.AttrEquals, Value: "text", Quoted: true, CaseFlag: "i"},
	}}
	w := writer.New()
	out, err := w.String(sel)
	require.NoError(t, err)
	assert.Equal(t, `[type="text" i]`, out)
}

func TestWriter_NthExpression(t *testing.T) {
	sel := &ast.Selector{Members: []ast.SelectorMember{
		&ast.NthExpression{Name: "nth-child", A: 2, B: 1},
	}}
	w := writer.New()
	out, err := w.String(sel)
	require.NoError(t, err)
	assert.Equal(t, ":nth-child(2n+1)", out)
}

func TestWriter_HeaderText(t *testing.T) {
	ss := &ast.Stylesheet{}
	w := writer.New()
	w.Settings.WriteHeaderText = true
	w.Settings.HeaderText = "generated"
	out, err := w.String(ss)
	require.NoError(t, err)
	assert.Equal(t, "/* generated */\n", out)
}
