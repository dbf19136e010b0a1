package shorthand

import "github.com/benbjohnson/css/ast"

// trblDescriptor builds a Descriptor for a property following the 1/2/3/4
// value top-right-bottom-left expansion rule shared by margin, padding,
// border-width, border-style, and border-color.
func trblDescriptor(name string, sides [4]string) *Descriptor {
	return &Descriptor{
		Name:      name,
		Longhands: []string{sides[0], sides[1], sides[2], sides[3]},
		split: func(terms []ast.ExpressionMember) map[string]*ast.Expression {
			var top, right, bottom, left ast.ExpressionMember
			switch len(terms) {
			case 1:
				top, right, bottom, left = terms[0], terms[0], terms[0], terms[0]
			case 2:
				top, right, bottom, left = terms[0], terms[1], terms[0], terms[1]
			case 3:
				top, right, bottom, left = terms[0], terms[1], terms[2], terms[1]
			case 4:
				top, right, bottom, left = terms[0], terms[1], terms[2], terms[3]
			default:
				return nil
			}
			return map[string]*ast.Expression{
				sides[0]: single(top),
				sides[1]: single(right),
				sides[2]: single(bottom),
				sides[3]: single(left),
			}
		},
	}
}

func init() {
	Register(trblDescriptor("margin", [4]string{"margin-top", "margin-right", "margin-bottom", "margin-left"}))
	Register(trblDescriptor("padding", [4]string{"padding-top", "padding-right", "padding-bottom", "padding-left"}))
	Register(trblDescriptor("border-width", [4]string{"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"}))
	Register(trblDescriptor("border-style", [4]string{"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"}))
	Register(trblDescriptor("border-color", [4]string{"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"}))
}
