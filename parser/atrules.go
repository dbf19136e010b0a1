package parser

import (
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// marginBoxNames is the set of @page margin-box at-rule names CSS2.1/CSS3
// recognize (spec.md §3 "PageMarginBlock").
var marginBoxNames = map[string]bool{
	"top-left-corner": true, "top-left": true, "top-center": true, "top-right": true, "top-right-corner": true,
	"bottom-left-corner": true, "bottom-left": true, "bottom-center": true, "bottom-right": true, "bottom-right-corner": true,
	"left-top": true, "left-middle": true, "left-bottom": true,
	"right-top": true, "right-middle": true, "right-bottom": true,
}

// consumeAtRule consumes one at-rule (the AtKeyword token has already been
// scanned; name is its value) and interprets its prelude/block according to
// its name, dispatching to the typed TopLevelRule spec.md §3 names for it,
// or capturing it literally as an UnknownRule (spec.md's open-extensibility
// requirement). isFirstToken is true only when no rule has come before this
// at-rule in the stylesheet (leading whitespace, CDO and CDC tokens are not
// counted), which @charset requires.
func (p *Parser) consumeAtRule(s TokenStream, name string, isFirstToken bool) (ast.TopLevelRule, bool) {
	lname := strings.ToLower(name)
	var prelude []token.Token
	hasBlock := false
preludeLoop:
	for {
		tok := s.Scan()
		switch tok.(type) {
		case *token.EOF, *token.Semicolon:
			break preludeLoop
		case *token.LBrace:
			hasBlock = true
			break preludeLoop
		default:
			prelude = append(prelude, tok)
		}
	}
	prelude = trimWS(prelude)

	switch lname {
	case "charset":
		if !isFirstToken {
			p.reportOrContinue(&UnexpectedRuleError{Name: "charset", Message: "must be the first rule in the stylesheet", Pos: token.PosOf(s.Current())})
		}
		if hasBlock {
			p.consumeBlockRules(s)
		}
		return nil, true

	case "import":
		return p.finishImportRule(prelude, s, hasBlock), true

	case "namespace":
		return p.finishNamespaceRule(prelude, s, hasBlock), true

	case "media":
		r := &ast.MediaRule{Queries: parseMediaQueryList(prelude)}
		if hasBlock {
			r.Rules = p.consumeBlockRules(s)
		}
		return r, true

	case "supports":
		r := &ast.SupportsRule{Condition: parseSupportsCondition(prelude)}
		if hasBlock {
			r.Rules = p.consumeBlockRules(s)
		}
		return r, true

	case "page":
		r := &ast.PageRule{Selectors: splitSelectorText(prelude)}
		if hasBlock {
			r.Declarations, r.MarginBlocks = p.consumePageBlock(s)
		}
		return r, true

	case "font-face":
		r := &ast.FontFaceRule{}
		if hasBlock {
			r.Declarations, _ = p.consumeDeclarationList(s)
		}
		return r, true

	case "viewport":
		r := &ast.ViewportRule{}
		if hasBlock {
			r.Declarations, _ = p.consumeDeclarationList(s)
		}
		return r, true

	default:
		if strings.HasSuffix(lname, "keyframes") {
			r := &ast.KeyframesRule{AtKeyword: lname, Name: identOrStringText(prelude)}
			if hasBlock {
				r.Blocks = p.consumeKeyframesBlocks(s)
			}
			return r, true
		}
		u := &ast.UnknownRule{Name: name, Prelude: joinTokens(prelude), HasBlock: hasBlock}
		if hasBlock {
			u.Body = p.consumeRawBlock(s)
		}
		return u, true
	}
}

func (p *Parser) finishImportRule(prelude []token.Token, s TokenStream, hasBlock bool) *ast.ImportRule {
	if hasBlock {
		p.consumeBlockRules(s) // malformed: @import never has a block
	}
	r := &ast.ImportRule{}
	c := newCursor(prelude)
	c.skipWS()
	switch t := c.peek().(type) {
	case *token.String:
		c.next()
		r.URL, r.Quoted = t.Value, true
	case *token.URL:
		c.next()
		r.URL = t.Value
	default:
		p.reportOrContinue(&RecoverableParseError{Message: "expected URL in @import", Pos: token.PosOf(c.peek())})
	}
	c.skipWS()
	r.Media = parseMediaQueryList(prelude[c.i:])
	return r
}

func (p *Parser) finishNamespaceRule(prelude []token.Token, s TokenStream, hasBlock bool) *ast.NamespaceRule {
	if hasBlock {
		p.consumeBlockRules(s) // malformed: @namespace never has a block
	}
	r := &ast.NamespaceRule{}
	c := newCursor(prelude)
	c.skipWS()
	if id, ok := c.peek().(*token.Ident); ok {
		c.next()
		r.Prefix = id.Value
		c.skipWS()
	}
	switch t := c.peek().(type) {
	case *token.String:
		c.next()
		r.URL = t.Value
	case *token.URL:
		c.next()
		r.URL = t.Value
	default:
		p.reportOrContinue(&RecoverableParseError{Message: "expected URL in @namespace", Pos: token.PosOf(c.peek())})
	}
	return r
}

// consumePageBlock consumes an @page block: declarations interleaved with
// margin-box at-rules (@top-left-corner, etc).
func (p *Parser) consumePageBlock(s TokenStream) ([]*ast.Declaration, []*ast.PageMarginBlock) {
	var decls []*ast.Declaration
	var margins []*ast.PageMarginBlock
	for {
		tok := s.Scan()
		switch t := tok.(type) {
		case *token.EOF, *token.RBrace:
			return decls, margins
		case *token.Whitespace, *token.Semicolon:
			// nop
		case *token.AtKeyword:
			lname := strings.ToLower(t.Value)
			if !marginBoxNames[lname] {
				p.consumeAtRule(s, t.Value, false)
				continue
			}
			for {
				tk := s.Scan()
				if _, ok := tk.(*token.LBrace); ok {
					break
				}
				if _, ok := tk.(*token.EOF); ok {
					return decls, margins
				}
			}
			blockDecls, _ := p.consumeDeclarationList(s)
			margins = append(margins, &ast.PageMarginBlock{Name: lname, Declarations: blockDecls})
		case *token.Ident:
			s.Unscan()
			toks := consumeUpTo(s)
			if decl, ok := parseDeclarationTokens(p, toks); ok {
				decls = append(decls, decl)
			} else {
				p.reportOrContinue(&RecoverableParseError{Message: "invalid declaration", Pos: token.PosOf(tok)})
			}
		default:
			p.reportOrContinue(&RecoverableParseError{Message: "expected declaration, got " + token.Name(tok), Pos: token.PosOf(tok)})
			syncToSemicolonOrBrace(s)
			if p.Mode != TolerantMode {
				return decls, margins
			}
		}
	}
}

// consumeKeyframesBlocks consumes the "from"/"to"/percentage-selector blocks
// inside @keyframes.
func (p *Parser) consumeKeyframesBlocks(s TokenStream) []*ast.KeyframesBlock {
	var blocks []*ast.KeyframesBlock
	for {
		var prelude []token.Token
	preludeLoop:
		for {
			tok := s.Scan()
			switch tok.(type) {
			case *token.EOF, *token.RBrace:
				return blocks
			case *token.LBrace:
				break preludeLoop
			default:
				prelude = append(prelude, tok)
			}
		}
		decls, _ := p.consumeDeclarationList(s)
		blocks = append(blocks, &ast.KeyframesBlock{
			Selectors:    splitSelectorText(prelude),
			Declarations: decls,
		})
	}
}

// consumeRawBlock consumes tokens (tracking nested braces) up to and
// including the matching '}' and renders them back to an approximate source
// string, for UnknownRule's literal body capture.
func (p *Parser) consumeRawBlock(s TokenStream) string {
	var toks []token.Token
	depth := 0
	for {
		tok := s.Scan()
		switch tok.(type) {
		case *token.EOF:
			return joinTokens(toks)
		case *token.RBrace:
			if depth == 0 {
				return joinTokens(toks)
			}
			depth--
			toks = append(toks, tok)
		case *token.LBrace:
			depth++
			toks = append(toks, tok)
		default:
			toks = append(toks, tok)
		}
	}
}

// splitSelectorText splits a prelude on top-level commas and renders each
// group back to approximate source text, for the "string selector" shape
// @page and @keyframes blocks use instead of the full Selector grammar.
func splitSelectorText(prelude []token.Token) []string {
	var out []string
	for _, group := range splitTopLevel(prelude, isComma) {
		group = trimWS(group)
		if len(group) == 0 {
			continue
		}
		out = append(out, joinTokens(group))
	}
	return out
}

func identOrStringText(toks []token.Token) string {
	c := newCursor(toks)
	c.skipWS()
	switch t := c.peek().(type) {
	case *token.Ident:
		return t.Value
	case *token.String:
		return t.Value
	}
	return ""
}

func joinTokens(toks []token.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(token.Text(t))
	}
	return sb.String()
}
