package shorthand

import "github.com/benbjohnson/css/ast"

var fontStyleKeywords = map[string]bool{"italic": true, "oblique": true}
var fontVariantKeywords = map[string]bool{"small-caps": true}
var fontWeightKeywords = map[string]bool{
	"bold": true, "bolder": true, "lighter": true,
	"100": true, "200": true, "300": true, "400": true, "500": true, "600": true, "700": true, "800": true, "900": true,
}
var fontSizeKeywords = map[string]bool{
	"xx-small": true, "x-small": true, "small": true, "medium": true,
	"large": true, "x-large": true, "xx-large": true, "smaller": true, "larger": true,
}

// isOperatorSlash reports whether m is the '/' separator between font-size
// and line-height.
func isOperatorSlash(m ast.ExpressionMember) bool {
	op, ok := m.(*ast.Operator)
	return ok && op.Op == '/'
}

func init() {
	Register(&Descriptor{
		Name: "font",
		Longhands: []string{
			"font-style", "font-variant", "font-weight", "font-size",
			"line-height", "font-family",
		},
		split: func(terms []ast.ExpressionMember) map[string]*ast.Expression {
			out := map[string]*ast.Expression{}
			i := 0
			for ; i < len(terms); i++ {
				id := termIdent(terms[i])
				switch {
				case fontStyleKeywords[id]:
					out["font-style"] = single(terms[i])
				case fontVariantKeywords[id]:
					out["font-variant"] = single(terms[i])
				case fontWeightKeywords[id]:
					out["font-weight"] = single(terms[i])
				case isLength(terms[i]) || fontSizeKeywords[id]:
					out["font-size"] = single(terms[i])
					i++
					goto afterSize
				default:
					goto afterSize
				}
			}
		afterSize:
			if i < len(terms) && isOperatorSlash(terms[i]) && i+1 < len(terms) {
				out["line-height"] = single(terms[i+1])
				i += 2
			}
			if i < len(terms) {
				out["font-family"] = &ast.Expression{Members: terms[i:]}
			}
			if len(out) == 0 {
				return nil
			}
			return out
		},
	})
}
