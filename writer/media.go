package writer

import "github.com/benbjohnson/css/ast"

func (w *Writer) writeMediaQuery(s *state, mq *ast.MediaQuery) {
	wrote := false
	switch mq.Modifier {
	case ast.OnlyModifier:
		s.writeString("only ")
		wrote = true
	case ast.NotModifier:
		s.writeString("not ")
		wrote = true
	}
	if mq.Medium != "" {
		s.writeString(mq.Medium)
		wrote = true
	}
	for _, f := range mq.Features {
		if wrote {
			s.writeString(" and ")
		}
		w.writeMediaFeature(s, f)
		wrote = true
	}
}

func (w *Writer) writeMediaFeature(s *state, f *ast.MediaFeature) {
	s.writeString("(" + f.Name)
	if f.Value != nil {
		s.writeString(": ")
		w.writeExpression(s, f.Value)
	}
	s.writeString(")")
}
