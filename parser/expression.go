package parser

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// parseExpressionTokens parses a bounded run of value tokens into an
// Expression (spec.md §3 "Expression"). It is used both for a declaration's
// value and for a function's argument list.
func parseExpressionTokens(toks []token.Token) *ast.Expression {
	c := newCursor(toks)
	expr := &ast.Expression{}
	for {
		c.skipWS()
		if c.done() {
			break
		}
		if _, ok := c.peek().(*token.Comma); ok {
			c.next()
			expr.Members = append(expr.Members, &ast.Operator{Op: ','})
			continue
		}
		if d, ok := c.peek().(*token.Delim); ok && (d.Value == "/" || d.Value == "=") {
			c.next()
			expr.Members = append(expr.Members, &ast.Operator{Op: d.Value[0]})
			continue
		}
		member, ok := parseTerm(c)
		if !ok {
			c.next() // unrecognized token inside a value: skip defensively
			continue
		}
		expr.Members = append(expr.Members, member)
	}
	return expr
}

// parseTerm consumes one term (or a nested function/calc()) at the cursor.
func parseTerm(c *cursor) (ast.ExpressionMember, bool) {
	switch t := c.peek().(type) {
	case *token.Number:
		c.next()
		return &ast.TermSimple{Kind: ast.TermNumber, Raw: t.Value, Number: t.Number}, true
	case *token.Percentage:
		c.next()
		return &ast.TermSimple{Kind: ast.TermPercentage, Raw: t.Value, Number: t.Number}, true
	case *token.Dimension:
		c.next()
		return &ast.TermSimple{Kind: ast.TermDimension, Raw: t.Value, Number: t.Number, Unit: t.Unit}, true
	case *token.Ident:
		c.next()
		return &ast.TermSimple{Kind: ast.TermIdent, Raw: t.Value}, true
	case *token.Hash:
		c.next()
		return &ast.TermSimple{Kind: ast.TermHash, Raw: "#" + t.Value}, true
	case *token.String:
		c.next()
		return &ast.TermSimple{Kind: ast.TermString, Raw: t.Value, Quote: byte(t.Ending)}, true
	case *token.UnicodeRange:
		c.next()
		return &ast.TermSimple{Kind: ast.TermUnicodeRange, Raw: unicodeRangeText(t)}, true
	case *token.URL:
		c.next()
		return &ast.TermURI{Value: t.Value}, true
	case *token.Function:
		return parseFunction(c, t.Value)
	default:
		return nil, false
	}
}

// parseFunction consumes a Function token (already peeked, name supplied)
// plus its balanced argument list, special-casing calc() into the Math
// hierarchy per spec.md §4.3's calc() grammar.
func parseFunction(c *cursor, name string) (ast.ExpressionMember, bool) {
	c.next() // consume the Function token itself
	inner := collectBalanced(c)

	if strings.EqualFold(name, "calc") {
		return parseMathExpr(newCursor(inner)), true
	}
	return &ast.Function{Name: name, Arguments: parseExpressionTokens(inner)}, true
}

// unicodeRangeText renders an approximate source form for a unicode-range
// token so TermSimple.Raw has something to carry; exact question-mark
// wildcard notation is not reconstructed since the scanner discards it.
func unicodeRangeText(t *token.UnicodeRange) string {
	if t.Start == t.End {
		return fmt.Sprintf("U+%X", t.Start)
	}
	return fmt.Sprintf("U+%X-%X", t.Start, t.End)
}
