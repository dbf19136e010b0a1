package shorthand

import "github.com/benbjohnson/css/ast"

var listStylePositionKeywords = map[string]bool{"inside": true, "outside": true}

func init() {
	Register(&Descriptor{
		Name:      "list-style",
		Longhands: []string{"list-style-type", "list-style-position", "list-style-image"},
		split: func(terms []ast.ExpressionMember) map[string]*ast.Expression {
			out := map[string]*ast.Expression{}
			for _, m := range terms {
				id := termIdent(m)
				switch {
				case isURL(m):
					out["list-style-image"] = single(m)
				case listStylePositionKeywords[id]:
					out["list-style-position"] = single(m)
				case id != "":
					out["list-style-type"] = single(m)
				}
			}
			if len(out) == 0 {
				return nil
			}
			return out
		},
	})

	Register(&Descriptor{
		Name:      "outline",
		Longhands: []string{"outline-color", "outline-style", "outline-width"},
		split:     classifyBorderTerms("outline-width", "outline-style", "outline-color"),
	})

	Register(&Descriptor{
		Name:      "flex",
		Longhands: []string{"flex-grow", "flex-shrink", "flex-basis"},
		split: func(terms []ast.ExpressionMember) map[string]*ast.Expression {
			out := map[string]*ast.Expression{}
			i := 0
			if i < len(terms) && isPlainNumber(terms[i]) {
				out["flex-grow"] = single(terms[i])
				i++
				if i < len(terms) && isPlainNumber(terms[i]) {
					out["flex-shrink"] = single(terms[i])
					i++
				}
			}
			if i < len(terms) {
				out["flex-basis"] = single(terms[i])
				i++
			}
			if len(out) == 0 {
				return nil
			}
			return out
		},
	})
}

// isPlainNumber reports whether m is a unitless number, the shape flex-grow
// and flex-shrink take (flex-basis is a length, percentage, or "auto").
func isPlainNumber(m ast.ExpressionMember) bool {
	t, ok := m.(*ast.TermSimple)
	return ok && t.Kind == ast.TermNumber
}
