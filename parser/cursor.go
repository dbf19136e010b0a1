package parser

import "github.com/benbjohnson/css/token"

// cursor walks a fixed, already-collected token slice. It backs the
// sub-parsers (expression, calc(), selector, media query, supports
// condition) that operate over a bounded run of tokens the outer
// TokenStream-driven parser has already carved out at a synchronization
// point, mirroring the teacher's TokenScanner (_examples/benbjohnson-css/parser.go)
// generalized to random-access peek/next instead of Scan/Unscan.
type cursor struct {
	toks []token.Token
	i    int
}

func newCursor(toks []token.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) peek() token.Token {
	if c.i >= len(c.toks) {
		return &token.EOF{}
	}
	return c.toks[c.i]
}

func (c *cursor) next() token.Token {
	tok := c.peek()
	if c.i < len(c.toks) {
		c.i++
	}
	return tok
}

func (c *cursor) skipWS() {
	for {
		if _, ok := c.peek().(*token.Whitespace); !ok {
			return
		}
		c.next()
	}
}

func (c *cursor) done() bool {
	return c.i >= len(c.toks)
}

// collectBalanced consumes tokens tracking parenthesis nesting, stopping at
// (and consuming) the first unmatched RParen, or at EOF. It is used both
// for a function's argument tokens (the opening paren is implicit in the
// Function token itself) and for a literal "(" group inside calc(). A
// nested Function token also opens an implicit paren — the tokenizer folds
// an ident and its "(" into one token — so it must count toward depth the
// same as a literal LParen, or a construct like ":not(:has(...))" would
// treat the inner function's RParen as closing the outer one.
func collectBalanced(c *cursor) []token.Token {
	var out []token.Token
	depth := 0
	for {
		tok := c.peek()
		if _, ok := tok.(*token.EOF); ok {
			return out
		}
		if _, ok := tok.(*token.RParen); ok {
			if depth == 0 {
				c.next()
				return out
			}
			depth--
			out = append(out, c.next())
			continue
		}
		switch tok.(type) {
		case *token.LParen, *token.Function:
			depth++
		}
		out = append(out, c.next())
	}
}
