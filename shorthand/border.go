package shorthand

import "github.com/benbjohnson/css/ast"

// borderSideDescriptor builds a Descriptor for border-top/right/bottom/left
// and for border itself: each classifies its (at most three) value terms
// into width/style/color by shape, in any source order.
func borderSideDescriptor(name, widthProp, styleProp, colorProp string) *Descriptor {
	return &Descriptor{
		Name:      name,
		Longhands: []string{widthProp, styleProp, colorProp},
		split:     classifyBorderTerms(widthProp, styleProp, colorProp),
	}
}

func classifyBorderTerms(widthProp, styleProp, colorProp string) func([]ast.ExpressionMember) map[string]*ast.Expression {
	return func(terms []ast.ExpressionMember) map[string]*ast.Expression {
		out := map[string]*ast.Expression{}
		for _, m := range terms {
			switch {
			case isColor(m):
				out[colorProp] = single(m)
			case isLength(m):
				out[widthProp] = single(m)
			case termIdent(m) != "":
				out[styleProp] = single(m)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

func init() {
	Register(borderSideDescriptor("border-top", "border-top-width", "border-top-style", "border-top-color"))
	Register(borderSideDescriptor("border-right", "border-right-width", "border-right-style", "border-right-color"))
	Register(borderSideDescriptor("border-bottom", "border-bottom-width", "border-bottom-style", "border-bottom-color"))
	Register(borderSideDescriptor("border-left", "border-left-width", "border-left-style", "border-left-color"))
	// "border" sets the same width/style/color on all four sides at once,
	// expanding directly to the three non-TRBL longhands (spec.md §6's
	// list names border alongside border-top/right/bottom/left, not a
	// 12-longhand expansion).
	Register(borderSideDescriptor("border", "border-width", "border-style", "border-color"))
}
