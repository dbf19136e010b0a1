package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/token"
)

// splitTopLevel splits toks on every token for which isSep returns true at
// paren/bracket nesting depth zero, so a comma inside :not(a, b) does not
// split the outer selector list.
func splitTopLevel(toks []token.Token, isSep func(token.Token) bool) [][]token.Token {
	var groups [][]token.Token
	var cur []token.Token
	depth := 0
	for _, tok := range toks {
		switch tok.(type) {
		case *token.LParen, *token.LBrack, *token.Function:
			depth++
		case *token.RParen, *token.RBrack:
			depth--
		}
		if depth == 0 && isSep(tok) {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	groups = append(groups, cur)
	return groups
}

func trimWS(toks []token.Token) []token.Token {
	start := 0
	for start < len(toks) {
		if _, ok := toks[start].(*token.Whitespace); !ok {
			break
		}
		start++
	}
	end := len(toks)
	for end > start {
		if _, ok := toks[end-1].(*token.Whitespace); !ok {
			break
		}
		end--
	}
	return toks[start:end]
}

func isComma(t token.Token) bool {
	_, ok := t.(*token.Comma)
	return ok
}

// parseSelectorList parses a comma-separated list of selectors, splitting
// only at top-level commas (spec.md §3 "Selector").
func parseSelectorList(toks []token.Token) []*ast.Selector {
	var sels []*ast.Selector
	for _, group := range splitTopLevel(toks, isComma) {
		group = trimWS(group)
		if len(group) == 0 {
			continue
		}
		sels = append(sels, parseSelector(group))
	}
	return sels
}

// parseSelector parses one selector: an alternating sequence of simple
// selectors and combinators, with a bare run of whitespace implying the
// descendant combinator.
func parseSelector(toks []token.Token) *ast.Selector {
	sel := &ast.Selector{}
	c := newCursor(toks)
	sawWS := false

	appendMember := func(m ast.SelectorMember) {
		if sawWS && len(sel.Members) > 0 {
			if _, ok := sel.Members[len(sel.Members)-1].(*ast.Combinator); !ok {
				sel.Members = append(sel.Members, &ast.Combinator{Kind: ast.Descendant})
			}
		}
		sel.Members = append(sel.Members, m)
		sawWS = false
	}

	for !c.done() {
		switch t := c.peek().(type) {
		case *token.Whitespace:
			c.next()
			sawWS = true

		case *token.Delim:
			switch t.Value {
			case ">":
				c.next()
				sel.Members = append(sel.Members, &ast.Combinator{Kind: ast.Child})
				sawWS = false
			case "+":
				c.next()
				sel.Members = append(sel.Members, &ast.Combinator{Kind: ast.AdjacentSibling})
				sawWS = false
			case "~":
				c.next()
				sel.Members = append(sel.Members, &ast.Combinator{Kind: ast.GeneralSibling})
				sawWS = false
			case "*":
				c.next()
				appendMember(parseNamespacedUniversal(c, ""))
			case ".":
				c.next()
				if id, ok := c.peek().(*token.Ident); ok {
					c.next()
					appendMember(&ast.ClassSelector{Name: id.Value})
				}
			default:
				c.next()
				sawWS = false
			}

		case *token.Ident:
			c.next()
			appendMember(parseNamespacedElement(c, t.Value))

		case *token.Hash:
			c.next()
			appendMember(&ast.IDSelector{Name: t.Value})

		case *token.LBrack:
			c.next()
			appendMember(parseAttributeSelector(c))

		case *token.Colon:
			c.next()
			double := false
			if _, ok := c.peek().(*token.Colon); ok {
				c.next()
				double = true
			}
			appendMember(parsePseudo(c, double))

		default:
			c.next()
			sawWS = false
		}
	}
	return sel
}

// parseNamespacedElement handles an Ident that may be followed by "|name"
// (namespace-qualified element) or "|*" (namespace-qualified universal).
func parseNamespacedElement(c *cursor, name string) ast.SelectorMember {
	if d, ok := c.peek().(*token.Delim); ok && d.Value == "|" {
		c.next()
		if star, ok := c.peek().(*token.Delim); ok && star.Value == "*" {
			c.next()
			return &ast.UniversalSelector{Namespace: name}
		}
		if id, ok := c.peek().(*token.Ident); ok {
			c.next()
			return &ast.ElementSelector{Namespace: name, Name: id.Value}
		}
	}
	return &ast.ElementSelector{Name: name}
}

// parseNamespacedUniversal handles "*" that may be followed by "|name" or
// "|*" (ns is the namespace prefix already consumed, "" if none yet known
// — a bare leading "*" before "|" means "any namespace").
func parseNamespacedUniversal(c *cursor, ns string) ast.SelectorMember {
	if d, ok := c.peek().(*token.Delim); ok && d.Value == "|" {
		c.next()
		if star, ok := c.peek().(*token.Delim); ok && star.Value == "*" {
			c.next()
			return &ast.UniversalSelector{Namespace: "*"}
		}
		if id, ok := c.peek().(*token.Ident); ok {
			c.next()
			return &ast.ElementSelector{Namespace: "*", Name: id.Value}
		}
	}
	return &ast.UniversalSelector{Namespace: ns}
}

// parseAttributeSelector parses the contents of "[...]"; the opening
// LBrack has already been consumed.
func parseAttributeSelector(c *cursor) *ast.AttributeSelector {
	a := &ast.AttributeSelector{}
	c.skipWS()

	if id, ok := c.peek().(*token.Ident); ok {
		c.next()
		a.Name = id.Value
		if d, ok := c.peek().(*token.Delim); ok && d.Value == "|" {
			c.next()
			a.Namespace = a.Name
			if id2, ok := c.peek().(*token.Ident); ok {
				c.next()
				a.Name = id2.Value
			}
		}
	}
	c.skipWS()

	switch t := c.peek().(type) {
	case *token.IncludeMatch:
		c.next()
		a.Op = ast.AttrIncludes
	case *token.DashMatch:
		c.next()
		a.Op = ast.AttrDashMatch
	case *token.PrefixMatch:
		c.next()
		a.Op = ast.AttrPrefixMatch
	case *token.SuffixMatch:
		c.next()
		a.Op = ast.AttrSuffixMatch
	case *token.SubstringMatch:
		c.next()
		a.Op = ast.AttrSubstringMatch
	case *token.Delim:
		if t.Value == "=" {
			c.next()
			a.Op = ast.AttrEquals
		}
	}

	if a.Op != "" {
		c.skipWS()
		switch t := c.peek().(type) {
		case *token.String:
			c.next()
			a.Value, a.Quoted = t.Value, true
		case *token.Ident:
			c.next()
			a.Value = t.Value
		}
		c.skipWS()
		if id, ok := c.peek().(*token.Ident); ok && (strings.EqualFold(id.Value, "i") || strings.EqualFold(id.Value, "s")) {
			c.next()
			a.CaseFlag = strings.ToLower(id.Value)
		}
	}

	for {
		tok := c.next()
		if _, ok := tok.(*token.RBrack); ok {
			break
		}
		if _, ok := tok.(*token.EOF); ok {
			break
		}
	}
	return a
}

// parsePseudo parses a pseudo-class or pseudo-element following a ':' (or
// '::' when isElement is true), already consumed.
func parsePseudo(c *cursor, isElement bool) ast.SelectorMember {
	switch t := c.peek().(type) {
	case *token.Ident:
		c.next()
		if isElement {
			return &ast.PseudoElementSelector{Name: t.Value}
		}
		return &ast.PseudoClassSelector{Name: t.Value}
	case *token.Function:
		c.next()
		name := t.Value
		args := collectBalanced(c)
		if isNthPseudo(name) {
			return parseNthExpression(name, args)
		}
		return &ast.FunctionalPseudoSelector{Name: name, Arguments: parseSelectorList(args)}
	default:
		return &ast.PseudoClassSelector{}
	}
}

func isNthPseudo(name string) bool {
	switch strings.ToLower(name) {
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		return true
	}
	return false
}

// parseNthExpression parses an An+B micro-syntax argument, optionally
// followed by "of <selector-list>" (CSS Selectors Level 4).
func parseNthExpression(name string, toks []token.Token) *ast.NthExpression {
	n := &ast.NthExpression{Name: name}
	c := newCursor(toks)
	c.skipWS()

	if id, ok := c.peek().(*token.Ident); ok {
		switch strings.ToLower(id.Value) {
		case "odd":
			c.next()
			n.A, n.B = 2, 1
		case "even":
			c.next()
			n.A, n.B = 2, 0
		default:
			n.A, n.B = parseAnB(c)
		}
	} else {
		n.A, n.B = parseAnB(c)
	}

	c.skipWS()
	if id, ok := c.peek().(*token.Ident); ok && strings.EqualFold(id.Value, "of") {
		c.next()
		n.Of = parseSelectorList(toks[c.i:])
	}
	return n
}

// parseAnB reconstructs the An+B textual micro-syntax from whatever run of
// adjacent ident/dimension/number/sign tokens the generic lexer produced —
// "2n+1", "2n + 1", "-n-3", and "n" all collapse to the same text once
// whitespace is dropped, sidestepping the generic tokenizer folding digits
// and signs into dimension units and numbers differently depending on
// adjacency.
func parseAnB(c *cursor) (int, int) {
	var sb strings.Builder
	for {
		switch t := c.peek().(type) {
		case *token.Ident:
			if strings.EqualFold(t.Value, "of") {
				return parseAnBText(sb.String())
			}
			sb.WriteString(t.Value)
			c.next()
		case *token.Dimension:
			sb.WriteString(t.Value)
			c.next()
		case *token.Number:
			sb.WriteString(t.Value)
			c.next()
		case *token.Whitespace:
			c.next()
		case *token.Delim:
			if t.Value == "+" || t.Value == "-" {
				sb.WriteString(t.Value)
				c.next()
				continue
			}
			return parseAnBText(sb.String())
		default:
			return parseAnBText(sb.String())
		}
	}
}

var (
	anbFullRe  = regexp.MustCompile(`(?i)^([+-]?\d*)n([+-]\d+)?$`)
	anbPlainRe = regexp.MustCompile(`^([+-]?\d+)$`)
)

func parseAnBText(s string) (int, int) {
	if m := anbFullRe.FindStringSubmatch(s); m != nil {
		a := 1
		switch m[1] {
		case "", "+":
			a = 1
		case "-":
			a = -1
		default:
			a, _ = strconv.Atoi(m[1])
		}
		b := 0
		if m[2] != "" {
			b, _ = strconv.Atoi(m[2])
		}
		return a, b
	}
	if m := anbPlainRe.FindStringSubmatch(s); m != nil {
		b, _ := strconv.Atoi(m[1])
		return 0, b
	}
	return 0, 0
}
