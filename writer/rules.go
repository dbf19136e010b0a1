package writer

import "github.com/benbjohnson/css/ast"

// writeTopLevelRule dispatches one top-level rule, applying the per-kind
// filter and, in Css21Compat mode, rejecting CSS3-only constructs.
func (w *Writer) writeTopLevelRule(s *state, r ast.TopLevelRule, depth int) {
	switch v := r.(type) {
	case *ast.ImportRule:
		w.writeImportRule(s, v, depth)
	case *ast.NamespaceRule:
		if !w.Settings.WriteNamespaceRules {
			return
		}
		w.writeNamespaceRule(s, v, depth)
	case *ast.StyleRule:
		w.writeStyleRule(s, v, depth)
	case *ast.MediaRule:
		if !w.Settings.WriteMediaRules {
			return
		}
		w.writeMediaRule(s, v, depth)
	case *ast.PageRule:
		if !w.Settings.WritePageRules {
			return
		}
		w.writePageRule(s, v, depth)
	case *ast.FontFaceRule:
		if !w.Settings.WriteFontFaceRules {
			return
		}
		w.writeFontFaceRule(s, v, depth)
	case *ast.KeyframesRule:
		if !w.Settings.WriteKeyframesRules {
			return
		}
		if w.Settings.Css21Compat {
			w.fail(s, "@"+v.AtKeyword)
			return
		}
		w.writeKeyframesRule(s, v, depth)
	case *ast.ViewportRule:
		if !w.Settings.WriteViewportRules {
			return
		}
		w.writeViewportRule(s, v, depth)
	case *ast.SupportsRule:
		if !w.Settings.WriteSupportsRules {
			return
		}
		if w.Settings.Css21Compat {
			w.fail(s, "@supports")
			return
		}
		w.writeSupportsRule(s, v, depth)
	case *ast.UnknownRule:
		if !w.Settings.WriteUnknownRules {
			return
		}
		w.writeUnknownRule(s, v, depth)
	default:
		w.fail(s, "unknown top-level rule")
	}
}

func (w *Writer) pad(s *state, depth int) {
	s.writeString(w.indentPrefix(depth))
}

func (w *Writer) sep(s *state) {
	s.writeString(w.pretty(s, " "))
}

func (w *Writer) nl(s *state) {
	s.writeString(w.pretty(s, "\n"))
}

func (w *Writer) writeImportRule(s *state, r *ast.ImportRule, depth int) {
	w.pad(s, depth)
	s.writeString("@import")
	w.sep(s)
	w.writeURLText(s, r.URL, r.Quoted)
	for _, mq := range r.Media {
		s.writeString(", ")
		w.writeMediaQuery(s, mq)
	}
	s.writeString(";")
}

func (w *Writer) writeNamespaceRule(s *state, r *ast.NamespaceRule, depth int) {
	w.pad(s, depth)
	s.writeString("@namespace")
	w.sep(s)
	if r.Prefix != "" {
		s.writeString(r.Prefix)
		w.sep(s)
	}
	w.writeURLText(s, r.URL, true)
	s.writeString(";")
}

// writeURLText renders a URL either as a bare url(...) token or a quoted
// string, honoring QuoteURLs.
func (w *Writer) writeURLText(s *state, url string, sourceQuoted bool) {
	if w.Settings.QuoteURLs || sourceQuoted {
		s.writeString(`"` + url + `"`)
		return
	}
	s.writeString("url(" + url + ")")
}

func (w *Writer) writeStyleRule(s *state, r *ast.StyleRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Declarations) == 0 {
		return
	}
	w.pad(s, depth)
	for i, sel := range r.Selectors {
		if i > 0 {
			s.writeString(",")
			w.sep(s)
		}
		w.writeSelector(s, sel)
	}
	w.sep(s)
	w.writeDeclarationBlock(s, r.Declarations, depth)
}

func (w *Writer) writeMediaRule(s *state, r *ast.MediaRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Rules) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@media")
	w.sep(s)
	for i, mq := range r.Queries {
		if i > 0 {
			s.writeString(",")
			w.sep(s)
		}
		w.writeMediaQuery(s, mq)
	}
	w.sep(s)
	w.writeNestedRuleBlock(s, r.Rules, depth)
}

func (w *Writer) writeSupportsRule(s *state, r *ast.SupportsRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Rules) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@supports")
	w.sep(s)
	w.writeSupportsCondition(s, r.Condition)
	w.sep(s)
	w.writeNestedRuleBlock(s, r.Rules, depth)
}

func (w *Writer) writeNestedRuleBlock(s *state, rules []ast.TopLevelRule, depth int) {
	s.writeString("{")
	w.nl(s)
	for _, rule := range rules {
		w.writeTopLevelRule(s, rule, depth+1)
		w.nl(s)
	}
	w.pad(s, depth)
	s.writeString("}")
}

func (w *Writer) writePageRule(s *state, r *ast.PageRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Declarations) == 0 && len(r.MarginBlocks) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@page")
	if len(r.Selectors) > 0 {
		w.sep(s)
		for i, sel := range r.Selectors {
			if i > 0 {
				s.writeString(", ")
			}
			s.writeString(sel)
		}
	}
	w.sep(s)
	s.writeString("{")
	w.nl(s)
	w.writeDeclarationsInline(s, r.Declarations, depth+1)
	for _, mb := range r.MarginBlocks {
		w.pad(s, depth+1)
		s.writeString("@" + mb.Name)
		w.sep(s)
		w.writeDeclarationBlock(s, mb.Declarations, depth+1)
		w.nl(s)
	}
	w.pad(s, depth)
	s.writeString("}")
}

func (w *Writer) writeFontFaceRule(s *state, r *ast.FontFaceRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Declarations) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@font-face")
	w.sep(s)
	w.writeDeclarationBlock(s, r.Declarations, depth)
}

func (w *Writer) writeViewportRule(s *state, r *ast.ViewportRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Declarations) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@viewport")
	w.sep(s)
	w.writeDeclarationBlock(s, r.Declarations, depth)
}

func (w *Writer) writeKeyframesRule(s *state, r *ast.KeyframesRule, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(r.Blocks) == 0 {
		return
	}
	w.pad(s, depth)
	s.writeString("@" + r.AtKeyword)
	w.sep(s)
	s.writeString(r.Name)
	w.sep(s)
	s.writeString("{")
	w.nl(s)
	for _, b := range r.Blocks {
		w.pad(s, depth+1)
		for i, sel := range b.Selectors {
			if i > 0 {
				s.writeString(", ")
			}
			s.writeString(sel)
		}
		w.sep(s)
		w.writeDeclarationBlock(s, b.Declarations, depth+1)
		w.nl(s)
	}
	w.pad(s, depth)
	s.writeString("}")
}

func (w *Writer) writeUnknownRule(s *state, r *ast.UnknownRule, depth int) {
	w.pad(s, depth)
	s.writeString("@" + r.Name)
	if r.Prelude != "" {
		w.sep(s)
		s.writeString(r.Prelude)
	}
	if !r.HasBlock {
		s.writeString(";")
		return
	}
	w.sep(s)
	s.writeString("{")
	s.writeString(r.Body)
	s.writeString("}")
}

// writeDeclarationBlock writes a "{ ... }" declaration block at depth,
// including the braces.
func (w *Writer) writeDeclarationBlock(s *state, decls []*ast.Declaration, depth int) {
	if w.Settings.RemoveUnnecessaryCode && len(decls) == 0 {
		s.writeString("{}")
		return
	}
	s.writeString("{")
	w.nl(s)
	w.writeDeclarationsInline(s, decls, depth+1)
	w.pad(s, depth)
	s.writeString("}")
}

// writeDeclarationsInline writes each declaration on its own padded line
// (pretty mode) or back-to-back (optimized mode), each terminated by ';'
// except optionally the last in optimized mode.
func (w *Writer) writeDeclarationsInline(s *state, decls []*ast.Declaration, depth int) {
	for i, d := range decls {
		w.pad(s, depth)
		w.writeDeclaration(s, d)
		if w.Settings.OptimizedOutput && i == len(decls)-1 {
			continue
		}
		s.writeString(";")
		w.nl(s)
	}
}
