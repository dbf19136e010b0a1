package parser

import (
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// parseSupportsCondition parses an @supports prelude token run into a flat,
// left-to-right member list with no re-ordering (spec.md §3 "Supports
// condition").
func parseSupportsCondition(toks []token.Token) *ast.SupportsCondition {
	cond := &ast.SupportsCondition{}
	c := newCursor(toks)

	for {
		c.skipWS()
		if c.done() {
			break
		}

		if id, ok := c.peek().(*token.Ident); ok && strings.EqualFold(id.Value, "not") {
			c.next()
			c.skipWS()
			if _, ok := c.peek().(*token.LParen); ok {
				c.next()
				inner := collectBalanced(c)
				cond.Members = append(cond.Members, &ast.SupportsNot{Condition: wrapSupportsParens(inner)})
			}
			continue
		}

		if id, ok := c.peek().(*token.Ident); ok && (strings.EqualFold(id.Value, "and") || strings.EqualFold(id.Value, "or")) {
			c.next()
			kind := ast.SupportsAnd
			if strings.EqualFold(id.Value, "or") {
				kind = ast.SupportsOr
			}
			cond.Members = append(cond.Members, &ast.SupportsOperator{Kind: kind})
			continue
		}

		if _, ok := c.peek().(*token.LParen); ok {
			c.next()
			inner := collectBalanced(c)
			cond.Members = append(cond.Members, parseSupportsInParens(inner))
			continue
		}

		// unrecognized token inside the condition: skip defensively.
		c.next()
	}
	return cond
}

// parseSupportsInParens classifies the contents of one parenthesized group
// as either a single declaration or a nested condition.
func parseSupportsInParens(toks []token.Token) ast.SupportsMember {
	if decl, ok := parseDeclarationTokens(nil, toks); ok {
		return &ast.SupportsDeclaration{Declaration: decl}
	}
	return &ast.SupportsGroup{Condition: parseSupportsCondition(toks)}
}

// wrapSupportsParens is the "not (...)" variant of parseSupportsInParens:
// the nested condition itself, not wrapped a second time in a SupportsGroup,
// since SupportsNot already carries its own Condition field.
func wrapSupportsParens(toks []token.Token) *ast.SupportsCondition {
	if decl, ok := parseDeclarationTokens(nil, toks); ok {
		return &ast.SupportsCondition{Members: []ast.SupportsMember{&ast.SupportsDeclaration{Declaration: decl}}}
	}
	return parseSupportsCondition(toks)
}
