package parser

import (
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// Parser builds a full semantic ast.Stylesheet directly from a token stream
// in one recursive-descent pass, generalizing the teacher's two-stage
// component-value-tree parser (_examples/benbjohnson-css/parser.go) per
// spec.md §9's license to collapse that intermediate representation so long
// as error-recovery synchronization points are preserved.
type Parser struct {
	Mode                 Mode
	RecoverableHandler   RecoverableErrorHandler
	UnrecoverableHandler UnrecoverableErrorHandler
	IllegalHandler       IllegalCharacterHandler

	firstErr error
}

// NewParser returns a Parser in TolerantMode using the process-wide default
// recoverable-error handler.
func NewParser() *Parser {
	return &Parser{Mode: TolerantMode}
}

func (p *Parser) handler() RecoverableErrorHandler {
	if p.RecoverableHandler != nil {
		return p.RecoverableHandler
	}
	return DefaultRecoverableErrorHandler()
}

// recoverable reports err to the configured handler and remembers the first
// one seen; it never itself decides whether to keep parsing — callers do
// that based on p.Mode.
func (p *Parser) recoverable(err error) {
	p.handler().HandleRecoverable(err)
	if p.firstErr == nil {
		p.firstErr = err
	}
}

func (p *Parser) unrecoverable(err error) {
	if p.UnrecoverableHandler != nil {
		p.UnrecoverableHandler.HandleUnrecoverable(err)
	}
	if p.firstErr == nil {
		p.firstErr = err
	}
}

// ParseStylesheet parses a complete stylesheet from s (spec.md §3 "Top-level
// container"). A panicking RecoverableErrorHandler (PanicHandler) is caught
// here and reported as an UnrecoverableParseError; no stylesheet is
// returned alongside it.
func (p *Parser) ParseStylesheet(s TokenStream) (ss *ast.Stylesheet, err error) {
	ss = &ast.Stylesheet{}
	defer func() {
		if r := recover(); r != nil {
			uerr := &UnrecoverableParseError{Message: "recoverable-error handler panicked", Pos: token.PosOf(s.Current()), LastGood: s.Current(), Cause: asError(r)}
			p.unrecoverable(uerr)
			ss = nil
			err = uerr
		} else if p.firstErr != nil {
			err = p.firstErr
		}
	}()

	seenAnyRule := false
	for {
		tok := s.Scan()
		switch t := tok.(type) {
		case *token.EOF:
			return ss, nil
		case *token.Whitespace, *token.CDO, *token.CDC:
			// ignored at the top level (spec.md §3)
		case *token.AtKeyword:
			rule, ok := p.consumeAtRule(s, t.Value, !seenAnyRule)
			seenAnyRule = true
			if ok && rule != nil {
				if ss.OutOfOrderRule(rule) {
					p.reportOrContinue(&RecoverableParseError{Message: "@" + t.Value + " must precede all style rules", Pos: token.PosOf(tok)})
				}
				ss.InsertRule(rule)
			}
		default:
			s.Unscan()
			seenAnyRule = true
			if rule := p.consumeStyleRule(s, true); rule != nil {
				ss.InsertRule(rule)
			}
		}
	}
}

// ParseDeclarationList parses a bare declaration list (as found in an HTML
// "style" attribute, or a single rule's body reparsed standalone).
func (p *Parser) ParseDeclarationList(s TokenStream) (decls []*ast.Declaration, err error) {
	defer func() {
		if r := recover(); r != nil {
			uerr := &UnrecoverableParseError{Message: "recoverable-error handler panicked", Pos: token.PosOf(s.Current()), Cause: asError(r)}
			p.unrecoverable(uerr)
			decls = nil
			err = uerr
		} else if p.firstErr != nil {
			err = p.firstErr
		}
	}()
	decls, _ = p.consumeDeclarationList(s)
	return decls, nil
}

// reportOrContinue reports a recoverable error; in either mode the first
// error reported becomes the parse's eventual return error. It does no
// resynchronization itself; callers decide how to continue.
func (p *Parser) reportOrContinue(err error) {
	p.recoverable(err)
}

// syncToSemicolonOrBrace implements CSS's "consume a component value and
// throw it away" declaration-list recovery (spec.md §4.3): starting right
// after a token that cannot begin a declaration, it discards tokens, passing
// over lone tokens, until the first of: a ';' at the caller's own nesting
// level (consumed), an unmatched '}' at that level (left unconsumed), the
// point a bracket it opened itself closes back to that level, or EOF. Called in both modes: TolerantMode then keeps parsing declarations
// from where sync left off; StrictMode still calls it once, to discard the
// orphaned remainder of the malformed construct, but never resumes the
// current declaration list afterward.
func syncToSemicolonOrBrace(s TokenStream) {
	depth := 0
	for {
		tok := s.Scan()
		switch tok.(type) {
		case *token.EOF:
			return
		case *token.LBrace, *token.LParen, *token.LBrack:
			depth++
		case *token.RParen, *token.RBrack:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return
			}
		case *token.RBrace:
			if depth == 0 {
				s.Unscan()
				return
			}
			depth--
			if depth == 0 {
				return
			}
		case *token.Semicolon:
			if depth == 0 {
				return
			}
		}
	}
}

// consumeStyleRule consumes a qualified (style) rule: a selector list up to
// '{', then a declaration list. topLevel is true for stylesheet-level rules
// and false for rules nested in a block (consumeBlockRules); both use the
// same selector grammar, and the parameter does not change parsing.
func (p *Parser) consumeStyleRule(s TokenStream, topLevel bool) *ast.StyleRule {
	var prelude []token.Token
	for {
		tok := s.Scan()
		switch tok.(type) {
		case *token.EOF:
			p.reportOrContinue(&RecoverableParseError{Message: "unexpected EOF in selector", Pos: token.PosOf(tok)})
			return nil
		case *token.LBrace:
			r := &ast.StyleRule{Selectors: parseSelectorList(prelude)}
			decls, terminated := p.consumeDeclarationList(s)
			if !terminated {
				p.reportOrContinue(&RecoverableParseError{Message: "unterminated rule", Pos: token.PosOf(tok)})
				if p.Mode == TolerantMode {
					// The rule's own closing '}' was never found (it was
					// lost inside a malformed nested block) — the whole
					// construct is dropped, not just the bad declaration.
					return nil
				}
			}
			r.Declarations = decls
			return r
		default:
			prelude = append(prelude, tok)
		}
	}
}

// consumeDeclarationList consumes declarations (and nested at-rules, where
// permitted) up to and including the block's closing '}'. The second return
// value is false when the list ran to EOF instead of a real '}', or when in
// StrictMode a token that cannot begin a declaration ended it early — callers
// that own an enclosing rule use that to tell a properly closed rule from
// one whose terminator was lost to a recovery skip.
func (p *Parser) consumeDeclarationList(s TokenStream) ([]*ast.Declaration, bool) {
	var decls []*ast.Declaration
	for {
		tok := s.Scan()
		switch t := tok.(type) {
		case *token.EOF:
			return decls, false
		case *token.RBrace:
			return decls, true
		case *token.Whitespace, *token.Semicolon:
			// nop
		case *token.AtKeyword:
			// a nested at-rule inside a declaration block (e.g. none of the
			// recognized at-rules are valid here); record literally and drop.
			p.consumeAtRule(s, t.Value, false)
		case *token.Ident:
			s.Unscan()
			toks := consumeUpTo(s)
			decl, ok := parseDeclarationTokens(p, toks)
			if !ok {
				p.reportOrContinue(&RecoverableParseError{Message: "invalid declaration", Pos: token.PosOf(tok)})
				continue
			}
			decls = append(decls, decl)
		default:
			p.reportOrContinue(&RecoverableParseError{Message: "expected declaration, got " + token.Name(tok), Pos: token.PosOf(tok)})
			syncToSemicolonOrBrace(s)
			if p.Mode != TolerantMode {
				return decls, false
			}
		}
	}
}

// consumeUpTo collects tokens (tracking nested blocks) until an unmatched
// ';' or '}' (the latter left unconsumed for the caller's own loop to see).
func consumeUpTo(s TokenStream) []token.Token {
	var out []token.Token
	depth := 0
	for {
		tok := s.Scan()
		switch tok.(type) {
		case *token.EOF:
			return out
		case *token.Semicolon:
			if depth == 0 {
				return out
			}
			out = append(out, tok)
		case *token.RBrace:
			if depth == 0 {
				s.Unscan()
				return out
			}
			depth--
			out = append(out, tok)
		case *token.LBrace, *token.LParen, *token.LBrack:
			depth++
			out = append(out, tok)
		case *token.RParen, *token.RBrack:
			if depth > 0 {
				depth--
			}
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}
}

// consumeBlockRules consumes a '{'-delimited list of top-level rules (used
// by @media and @supports, which nest ordinary style/at-rules); the opening
// '{' has already been consumed by the caller.
func (p *Parser) consumeBlockRules(s TokenStream) []ast.TopLevelRule {
	var rules []ast.TopLevelRule
	for {
		tok := s.Scan()
		switch t := tok.(type) {
		case *token.EOF, *token.RBrace:
			return rules
		case *token.Whitespace, *token.CDO, *token.CDC:
			// nop
		case *token.AtKeyword:
			rule, ok := p.consumeAtRule(s, t.Value, false)
			if ok && rule != nil {
				rules = append(rules, rule)
			}
		default:
			s.Unscan()
			if rule := p.consumeStyleRule(s, false); rule != nil {
				rules = append(rules, rule)
			}
		}
	}
}

// asError normalizes a recover() value into an error.
func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &RecoverableParseError{Message: strings.TrimSpace(toString(r))}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "panic"
}
