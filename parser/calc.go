package parser

import "github.com/benbjohnson/css/ast"
import "github.com/benbjohnson/css/token"

// parseMathExpr parses a calc() argument list (or a parenthesized
// sub-expression within one) into a Math node: an alternating list of
// MathProduct and SumOperator members (spec.md §3, §4.3, §8's "calc(4 + 5)"
// test case).
func parseMathExpr(c *cursor) *ast.Math {
	m := &ast.Math{}
	c.skipWS()
	m.Members = append(m.Members, parseMathProduct(c))
	for {
		save := c.i
		c.skipWS()
		op, ok := sumOpToken(c.peek())
		if !ok {
			c.i = save
			break
		}
		c.next()
		m.Members = append(m.Members, &ast.SumOperator{Op: op})
		c.skipWS()
		m.Members = append(m.Members, parseMathProduct(c))
	}
	return m
}

// parseMathProduct parses a run of MathUnits joined by '*'/'/' (no
// mandatory surrounding whitespace, unlike SumOperator).
func parseMathProduct(c *cursor) *ast.MathProduct {
	p := &ast.MathProduct{}
	p.Members = append(p.Members, parseMathUnit(c))
	for {
		save := c.i
		c.skipWS()
		d, ok := c.peek().(*token.Delim)
		if !ok || (d.Value != "*" && d.Value != "/") {
			c.i = save
			break
		}
		c.next()
		p.Members = append(p.Members, &ast.MathOperator{Op: d.Value[0]})
		c.skipWS()
		p.Members = append(p.Members, parseMathUnit(c))
	}
	return p
}

// parseMathUnit parses a single calc() unit: either a parenthesized
// sub-expression (Group) or a plain term/function (Value).
func parseMathUnit(c *cursor) *ast.MathUnit {
	c.skipWS()
	if _, ok := c.peek().(*token.LParen); ok {
		c.next()
		return &ast.MathUnit{Group: parseMathExpr(newCursor(collectBalanced(c)))}
	}
	member, ok := parseTerm(c)
	if !ok {
		c.next()
		return &ast.MathUnit{}
	}
	return &ast.MathUnit{Value: member}
}

// sumOpToken reports whether tok is a calc() sum-level '+'/'-' operator.
// The scanner lexes a sign that no digit follows as a DELIM; a Number token
// whose text is only the sign (as "-." followed by a non-digit produces) is
// also accepted as the operator rather than a malformed number literal.
func sumOpToken(tok token.Token) (byte, bool) {
	switch t := tok.(type) {
	case *token.Delim:
		if t.Value == "+" {
			return '+', true
		}
		if t.Value == "-" {
			return '-', true
		}
	case *token.Number:
		if t.Value == "+" {
			return '+', true
		}
		if t.Value == "-" {
			return '-', true
		}
	}
	return 0, false
}
