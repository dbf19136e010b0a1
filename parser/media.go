package parser

import (
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// parseMediaQueryList parses a comma-separated media query list token run
// (spec.md §3 "Media query") used by both @media preludes and the "media"
// component of an @import rule.
func parseMediaQueryList(toks []token.Token) []*ast.MediaQuery {
	var queries []*ast.MediaQuery
	for _, group := range splitTopLevel(toks, isComma) {
		group = trimWS(group)
		if len(group) == 0 {
			continue
		}
		queries = append(queries, parseMediaQuery(group))
	}
	return queries
}

// parseMediaQuery parses one media query: an optional "only"/"not"
// modifier, an optional medium identifier, and any number of "(feature:
// value)" tests implicitly joined by "and".
func parseMediaQuery(toks []token.Token) *ast.MediaQuery {
	q := &ast.MediaQuery{}
	c := newCursor(toks)
	c.skipWS()

	if id, ok := c.peek().(*token.Ident); ok {
		switch strings.ToLower(id.Value) {
		case "only":
			c.next()
			q.Modifier = ast.OnlyModifier
		case "not":
			c.next()
			q.Modifier = ast.NotModifier
		}
	}
	c.skipWS()

	if id, ok := c.peek().(*token.Ident); ok && !strings.EqualFold(id.Value, "and") {
		c.next()
		q.Medium = id.Value
	}

	for {
		c.skipWS()
		if id, ok := c.peek().(*token.Ident); ok && strings.EqualFold(id.Value, "and") {
			c.next()
			c.skipWS()
		}
		if _, ok := c.peek().(*token.LParen); !ok {
			break
		}
		c.next()
		q.Features = append(q.Features, parseMediaFeature(collectBalanced(c)))
	}
	return q
}

// parseMediaFeature parses the contents of one "(...)" media feature test;
// the surrounding parens have already been stripped.
func parseMediaFeature(toks []token.Token) *ast.MediaFeature {
	f := &ast.MediaFeature{}
	c := newCursor(toks)
	c.skipWS()

	if id, ok := c.peek().(*token.Ident); ok {
		c.next()
		f.Name = id.Value
	}
	c.skipWS()

	if _, ok := c.peek().(*token.Colon); ok {
		c.next()
		f.Value = parseExpressionTokens(toks[c.i:])
	}
	return f
}
