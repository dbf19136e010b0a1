package writer

import (
	"fmt"
	"strconv"

	"github.com/benbjohnson/css/ast"
)

func (w *Writer) writeSelector(s *state, sel *ast.Selector) {
	for _, m := range sel.Members {
		w.writeSelectorMember(s, m)
	}
}

func (w *Writer) writeSelectorMember(s *state, m ast.SelectorMember) {
	switch v := m.(type) {
	case *ast.ElementSelector:
		w.writeNamespacedName(s, v.Namespace, v.Name)
	case *ast.UniversalSelector:
		w.writeNamespacedName(s, v.Namespace, "*")
	case *ast.IDSelector:
		s.writeString("#" + v.Name)
	case *ast.ClassSelector:
		s.writeString("." + v.Name)
	case *ast.AttributeSelector:
		w.writeAttributeSelector(s, v)
	case *ast.PseudoClassSelector:
		s.writeString(":" + v.Name)
	case *ast.PseudoElementSelector:
		s.writeString("::" + v.Name)
	case *ast.FunctionalPseudoSelector:
		s.writeString(":" + v.Name + "(")
		w.writeSelectorList(s, v.Arguments)
		s.writeString(")")
	case *ast.NthExpression:
		s.writeString(":" + v.Name + "(")
		w.writeAnB(s, v.A, v.B)
		if len(v.Of) > 0 {
			s.writeString(" of ")
			w.writeSelectorList(s, v.Of)
		}
		s.writeString(")")
	case *ast.Combinator:
		w.writeCombinator(s, v.Kind)
	default:
		w.fail(s, fmt.Sprintf("unknown selector member %T", m))
	}
}

func (w *Writer) writeSelectorList(s *state, sels []*ast.Selector) {
	for i, sel := range sels {
		if i > 0 {
			s.writeString(", ")
		}
		w.writeSelector(s, sel)
	}
}

func (w *Writer) writeNamespacedName(s *state, ns, name string) {
	if ns != "" {
		s.writeString(ns + "|" + name)
		return
	}
	s.writeString(name)
}

func (w *Writer) writeCombinator(s *state, kind ast.CombinatorKind) {
	switch kind {
	case ast.Descendant:
		s.writeString(" ")
	case ast.Child:
		s.writeString(w.pretty(s, " ") + ">" + w.pretty(s, " "))
	case ast.AdjacentSibling:
		s.writeString(w.pretty(s, " ") + "+" + w.pretty(s, " "))
	case ast.GeneralSibling:
		s.writeString(w.pretty(s, " ") + "~" + w.pretty(s, " "))
	}
}

func (w *Writer) writeAttributeSelector(s *state, a *ast.AttributeSelector) {
	s.writeString("[")
	w.writeNamespacedName(s, a.Namespace, a.Name)
	if a.Op != ast.AttrExists {
		s.writeString(string(a.Op))
		if a.Quoted {
			s.writeString(`"` + a.Value + `"`)
		} else {
			s.writeString(a.Value)
		}
		if a.CaseFlag != "" {
			s.writeString(" " + a.CaseFlag)
		}
	}
	s.writeString("]")
}

// writeAnB renders the An+B micro-syntax spec.md §3's NthExpression holds as
// integers, reconstructing the canonical textual form rather than any
// particular source spelling (per spec.md §4.4, An+B is retained only as
// integers, so round-tripping the exact source spacing/sign is not
// required).
func (w *Writer) writeAnB(s *state, a, b int) {
	switch {
	case a == 0:
		s.writeString(strconv.Itoa(b))
		return
	case a == 1:
		s.writeString("n")
	case a == -1:
		s.writeString("-n")
	default:
		s.writeString(strconv.Itoa(a) + "n")
	}
	switch {
	case b > 0:
		s.writeString("+" + strconv.Itoa(b))
	case b < 0:
		s.writeString(strconv.Itoa(b))
	}
}
