package writer

import (
	"fmt"

	"github.com/benbjohnson/css/ast"
)

func (w *Writer) writeDeclaration(s *state, d *ast.Declaration) {
	s.writeString(d.Name)
	s.writeString(":")
	w.sep(s)
	w.writeExpression(s, d.Value)
	if d.Important {
		s.writeString(w.pretty(s, " ") + "!important")
	}
}

func (w *Writer) writeExpression(s *state, e *ast.Expression) {
	if e == nil {
		return
	}
	for i, m := range e.Members {
		if i > 0 {
			if !isOperatorMember(e.Members[i-1]) && !isOperatorMember(m) {
				s.writeString(" ")
			}
		}
		w.writeExpressionMember(s, m)
	}
}

// isOperatorMember reports whether m is a ',' '/' or '=' Operator — these
// sit directly against their neighbors rather than being space-separated
// like ordinary value terms.
func isOperatorMember(m ast.ExpressionMember) bool {
	_, ok := m.(*ast.Operator)
	return ok
}

func (w *Writer) writeExpressionMember(s *state, m ast.ExpressionMember) {
	switch v := m.(type) {
	case *ast.TermSimple:
		w.writeTermSimple(s, v)
	case *ast.TermURI:
		w.writeURLText(s, v.Value, v.Quoted)
	case *ast.Function:
		w.writeFunction(s, v)
	case *ast.Math:
		if w.Settings.Css21Compat {
			w.fail(s, "calc()")
			return
		}
		w.writeMath(s, v)
	case *ast.Operator:
		w.writeOperator(s, v.Op)
	default:
		w.fail(s, fmt.Sprintf("unknown expression member %T", m))
	}
}

func (w *Writer) writeOperator(s *state, op byte) {
	switch op {
	case ',':
		s.writeString(",")
	default:
		s.writeString(string(op))
	}
}

func (w *Writer) writeTermSimple(s *state, t *ast.TermSimple) {
	switch t.Kind {
	case ast.TermHash:
		s.writeString("#" + t.Raw)
	case ast.TermString:
		q := byte('"')
		if t.Quote != 0 {
			q = t.Quote
		}
		s.writeString(string(q) + t.Raw + string(q))
	default:
		s.writeString(t.Raw)
	}
}

func (w *Writer) writeFunction(s *state, f *ast.Function) {
	s.writeString(f.Name + "(")
	w.writeExpression(s, f.Arguments)
	s.writeString(")")
}

func (w *Writer) writeMath(s *state, m *ast.Math) {
	s.writeString("calc(")
	w.writeMathMembers(s, m.Members)
	s.writeString(")")
}

func (w *Writer) writeMathMembers(s *state, members []ast.MathMember) {
	for _, mm := range members {
		switch v := mm.(type) {
		case *ast.MathProduct:
			w.writeMathProduct(s, v)
		case *ast.SumOperator:
			s.writeString(" " + string(v.Op) + " ")
		}
	}
}

func (w *Writer) writeMathProduct(s *state, p *ast.MathProduct) {
	for _, mm := range p.Members {
		switch v := mm.(type) {
		case *ast.MathUnit:
			w.writeMathUnit(s, v)
		case *ast.MathOperator:
			s.writeString(string(v.Op))
		}
	}
}

func (w *Writer) writeMathUnit(s *state, u *ast.MathUnit) {
	if u.Group != nil {
		s.writeString("(")
		w.writeMathMembers(s, u.Group.Members)
		s.writeString(")")
		return
	}
	w.writeExpressionMember(s, u.Value)
}
