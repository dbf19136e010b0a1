package token

// PosOf returns the source position recorded on any token kind.
func PosOf(tok Token) Pos {
	switch tok := tok.(type) {
	case *Ident:
		return tok.Pos
	case *Function:
		return tok.Pos
	case *AtKeyword:
		return tok.Pos
	case *Hash:
		return tok.Pos
	case *String:
		return tok.Pos
	case *BadString:
		return tok.Pos
	case *URL:
		return tok.Pos
	case *BadURL:
		return tok.Pos
	case *Delim:
		return tok.Pos
	case *Number:
		return tok.Pos
	case *Percentage:
		return tok.Pos
	case *Dimension:
		return tok.Pos
	case *UnicodeRange:
		return tok.Pos
	case *IncludeMatch:
		return tok.Pos
	case *DashMatch:
		return tok.Pos
	case *PrefixMatch:
		return tok.Pos
	case *SuffixMatch:
		return tok.Pos
	case *SubstringMatch:
		return tok.Pos
	case *Column:
		return tok.Pos
	case *Whitespace:
		return tok.Pos
	case *CDO:
		return tok.Pos
	case *CDC:
		return tok.Pos
	case *Colon:
		return tok.Pos
	case *Semicolon:
		return tok.Pos
	case *Comma:
		return tok.Pos
	case *LBrack:
		return tok.Pos
	case *RBrack:
		return tok.Pos
	case *LParen:
		return tok.Pos
	case *RParen:
		return tok.Pos
	case *LBrace:
		return tok.Pos
	case *RBrace:
		return tok.Pos
	default:
		return Pos{}
	}
}

// Name returns a short human-readable token kind name, used in diagnostics
// and in the expected-token sets of parse errors.
func Name(tok Token) string {
	switch tok.(type) {
	case *Ident:
		return "ident"
	case *Function:
		return "function"
	case *AtKeyword:
		return "at-keyword"
	case *Hash:
		return "hash"
	case *String:
		return "string"
	case *BadString:
		return "bad-string"
	case *URL:
		return "url"
	case *BadURL:
		return "bad-url"
	case *Delim:
		return "delim"
	case *Number:
		return "number"
	case *Percentage:
		return "percentage"
	case *Dimension:
		return "dimension"
	case *UnicodeRange:
		return "unicode-range"
	case *IncludeMatch:
		return "~="
	case *DashMatch:
		return "|="
	case *PrefixMatch:
		return "^="
	case *SuffixMatch:
		return "$="
	case *SubstringMatch:
		return "*="
	case *Column:
		return "||"
	case *Whitespace:
		return "whitespace"
	case *CDO:
		return "<!--"
	case *CDC:
		return "-->"
	case *Colon:
		return ":"
	case *Semicolon:
		return ";"
	case *Comma:
		return ","
	case *LBrack:
		return "["
	case *RBrack:
		return "]"
	case *LParen:
		return "("
	case *RParen:
		return ")"
	case *LBrace:
		return "{"
	case *RBrace:
		return "}"
	case *EOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Text reconstructs an approximate source rendering of a single token,
// sufficient for capturing the literal body of an UnknownRule. It does not
// promise to reproduce the original bytes (escapes are not re-encoded).
func Text(tok Token) string {
	switch tok := tok.(type) {
	case *Ident:
		return tok.Value
	case *Function:
		return tok.Value + "("
	case *AtKeyword:
		return "@" + tok.Value
	case *Hash:
		return "#" + tok.Value
	case *String:
		q := string(tok.Ending)
		return q + tok.Value + q
	case *BadString:
		return ""
	case *URL:
		return "url(" + tok.Value + ")"
	case *BadURL:
		return "url()"
	case *Delim:
		return tok.Value
	case *Number:
		return tok.Value
	case *Percentage:
		return tok.Value
	case *Dimension:
		return tok.Value
	case *UnicodeRange:
		return "u+" + string(rune(tok.Start))
	case *IncludeMatch:
		return "~="
	case *DashMatch:
		return "|="
	case *PrefixMatch:
		return "^="
	case *SuffixMatch:
		return "$="
	case *SubstringMatch:
		return "*="
	case *Column:
		return "||"
	case *Whitespace:
		return tok.Value
	case *CDO:
		return "<!--"
	case *CDC:
		return "-->"
	case *Colon:
		return ":"
	case *Semicolon:
		return ";"
	case *Comma:
		return ","
	case *LBrack:
		return "["
	case *RBrack:
		return "]"
	case *LParen:
		return "("
	case *RParen:
		return ")"
	case *LBrace:
		return "{"
	case *RBrace:
		return "}"
	default:
		return ""
	}
}
