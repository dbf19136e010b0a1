package shorthand

import "github.com/benbjohnson/css/ast"

var backgroundRepeatKeywords = map[string]bool{
	"repeat": true, "repeat-x": true, "repeat-y": true, "no-repeat": true, "space": true, "round": true,
}

var backgroundAttachmentKeywords = map[string]bool{
	"scroll": true, "fixed": true, "local": true,
}

var backgroundPositionKeywords = map[string]bool{
	"top": true, "bottom": true, "left": true, "right": true, "center": true,
}

func init() {
	Register(&Descriptor{
		Name: "background",
		Longhands: []string{
			"background-color", "background-image", "background-repeat",
			"background-attachment", "background-position",
		},
		split: func(terms []ast.ExpressionMember) map[string]*ast.Expression {
			out := map[string]*ast.Expression{}
			var position []ast.ExpressionMember
			for _, m := range terms {
				id := termIdent(m)
				switch {
				case isURL(m):
					out["background-image"] = single(m)
				case isColor(m):
					out["background-color"] = single(m)
				case backgroundRepeatKeywords[id]:
					out["background-repeat"] = single(m)
				case backgroundAttachmentKeywords[id]:
					out["background-attachment"] = single(m)
				case backgroundPositionKeywords[id] || isLength(m):
					position = append(position, m)
				}
			}
			if len(position) > 0 {
				out["background-position"] = multi(position...)
			}
			if len(out) == 0 {
				return nil
			}
			return out
		},
	})
}
