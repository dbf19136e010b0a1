package parser

import (
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// parseDeclarationTokens parses one declaration's tokens: an ident, a
// colon, and the remaining value tokens, checking for a trailing
// "! important" (spec.md §3 "Declaration"). Returns false if the tokens do
// not form a valid declaration (no leading ident, or no colon). p may be nil
// (as when called from @supports condition parsing, which has no error sink
// of its own); a nil p simply skips reporting the near-miss !important error.
func parseDeclarationTokens(p *Parser, toks []token.Token) (*ast.Declaration, bool) {
	c := newCursor(toks)
	c.skipWS()

	ident, ok := c.peek().(*token.Ident)
	if !ok {
		return nil, false
	}
	c.next()
	c.skipWS()

	if _, ok := c.peek().(*token.Colon); !ok {
		return nil, false
	}
	c.next()

	value := toks[c.i:]
	value, important := stripImportant(p, value)

	return &ast.Declaration{
		Name:      ident.Value,
		Value:     parseExpressionTokens(value),
		Important: important,
	}, true
}

// stripImportant removes a trailing "!important" (allowing whitespace
// around the "!" and around the keyword, case-insensitively) and reports
// whether it was present. Any tokens between "!" and "important" other than
// whitespace are a recoverable error (spec.md §3 "Declaration"): stripImportant
// still recognizes the attempt (so the bad tokens aren't silently absorbed as
// ordinary value content) but reports it through p rather than matching it.
func stripImportant(p *Parser, toks []token.Token) ([]token.Token, bool) {
	end := len(toks)
	for end > 0 {
		if _, ok := toks[end-1].(*token.Whitespace); ok {
			end--
			continue
		}
		break
	}
	if end == 0 {
		return toks, false
	}
	ident, ok := toks[end-1].(*token.Ident)
	if ok && strings.EqualFold(ident.Value, "important") {
		bangEnd := end - 1
		for bangEnd > 0 {
			if _, ok := toks[bangEnd-1].(*token.Whitespace); ok {
				bangEnd--
				continue
			}
			break
		}
		if bangEnd > 0 {
			if d, ok := toks[bangEnd-1].(*token.Delim); ok && d.Value == "!" {
				return toks[:bangEnd-1], true
			}
		}
	}

	if bangIdx := lastBangDelim(toks); bangIdx >= 0 {
		tail := trimWS(toks[bangIdx+1:])
		if len(tail) > 0 && endsWithImportant(tail) {
			if p != nil {
				p.reportOrContinue(&RecoverableParseError{
					Message: "unexpected tokens between ! and important",
					Pos:     token.PosOf(toks[bangIdx]),
				})
			}
		}
	}

	return toks, false
}

// lastBangDelim returns the index of the last "!" delimiter token in toks,
// or -1 if there is none.
func lastBangDelim(toks []token.Token) int {
	for i := len(toks) - 1; i >= 0; i-- {
		if d, ok := toks[i].(*token.Delim); ok && d.Value == "!" {
			return i
		}
	}
	return -1
}

// endsWithImportant reports whether toks' last token is the ident
// "important" (case-insensitively), regardless of what precedes it.
func endsWithImportant(toks []token.Token) bool {
	ident, ok := toks[len(toks)-1].(*token.Ident)
	return ok && strings.EqualFold(ident.Value, "important")
}
