package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/visit"
)

func sampleSheet() *ast.Stylesheet {
	return &ast.Stylesheet{Rules: []ast.TopLevelRule{
		&ast.ImportRule{URL: "reset.css", Quoted: true},
		&ast.StyleRule{
			Selectors: []*ast.Selector{{Members: []ast.SelectorMember{&ast.ElementSelector{Name: "div"}}}},
			Declarations: []*ast.Declaration{
				{
					Name: "background",
					Value: &ast.Expression{Members: []ast.ExpressionMember{
						&ast.TermURI{Value: "bg.png"},
					}},
				},
			},
		},
		&ast.MediaRule{
			Queries: []*ast.MediaQuery{{Medium: "screen"}},
			Rules: []ast.TopLevelRule{
				&ast.StyleRule{
					Selectors:    []*ast.Selector{{Members: []ast.SelectorMember{&ast.ClassSelector{Name: "nested"}}}},
					Declarations: []*ast.Declaration{{Name: "color", Value: &ast.Expression{}}},
				},
			},
		},
	}}
}

type recordingVisitor struct {
	visit.NopVisitor
	begins []string
	ends   []string
}

func (r *recordingVisitor) BeginStyleRule(*ast.StyleRule) { r.begins = append(r.begins, "style") }
func (r *recordingVisitor) EndStyleRule(*ast.StyleRule)   { r.ends = append(r.ends, "style") }
func (r *recordingVisitor) BeginMediaRule(*ast.MediaRule) { r.begins = append(r.begins, "media") }
func (r *recordingVisitor) EndMediaRule(*ast.MediaRule)   { r.ends = append(r.ends, "media") }

func TestWalk_VisitsNestedRulesDepthFirst(t *testing.T) {
	rv := &recordingVisitor{}
	visit.Walk(sampleSheet(), rv)

	require.Equal(t, []string{"style", "media", "style"}, rv.begins)
	require.Equal(t, []string{"style", "style", "media"}, rv.ends)
}

func TestWalk_VisitsDeclarationsWithEnclosingRule(t *testing.T) {
	var names []string
	dv := &visit.DeclarationVisitor{
		Handle: func(decl *ast.Declaration, enclosing ast.TopLevelRule) {
			names = append(names, decl.Name)
			if _, ok := enclosing.(*ast.StyleRule); !ok {
				t.Fatalf("expected enclosing *ast.StyleRule, got %T", enclosing)
			}
		},
	}
	visit.Walk(sampleSheet(), dv)
	assert.Equal(t, []string{"background", "color"}, names)
}

func TestURLVisitor_RewritesInPlace(t *testing.T) {
	ss := sampleSheet()
	uv := &visit.URLVisitor{Rewrite: func(uri string) string { return "/assets/" + uri }}
	visit.Walk(ss, uv)

	styleRule := ss.Rules[1].(*ast.StyleRule)
	term := styleRule.Declarations[0].Value.Members[0].(*ast.TermURI)
	assert.Equal(t, "/assets/bg.png", term.Value)
}
