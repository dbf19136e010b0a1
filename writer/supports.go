package writer

import "github.com/benbjohnson/css/ast"

func (w *Writer) writeSupportsCondition(s *state, c *ast.SupportsCondition) {
	for _, m := range c.Members {
		w.writeSupportsMember(s, m)
	}
}

func (w *Writer) writeSupportsMember(s *state, m ast.SupportsMember) {
	switch v := m.(type) {
	case *ast.SupportsDeclaration:
		s.writeString("(")
		w.writeDeclaration(s, v.Declaration)
		s.writeString(")")
	case *ast.SupportsNot:
		s.writeString("not ")
		w.writeSupportsCondition(s, v.Condition)
	case *ast.SupportsOperator:
		if v.Kind == ast.SupportsAnd {
			s.writeString(" and ")
		} else {
			s.writeString(" or ")
		}
	case *ast.SupportsGroup:
		s.writeString("(")
		w.writeSupportsCondition(s, v.Condition)
		s.writeString(")")
	}
}
