// Package charset implements CSS's input byte-stream decoding algorithm
// (spec.md §4.1): BOM sniffing, the literal @charset rule, and a caller
// supplied fallback, resolved through golang.org/x/text's encoding registry.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Source names how the effective charset was determined, for diagnostics.
type Source int

const (
	SourceBOM Source = iota
	SourceRule
	SourceFallback
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceBOM:
		return "byte-order mark"
	case SourceRule:
		return "@charset rule"
	case SourceFallback:
		return "fallback"
	default:
		return "default"
	}
}

// DefaultCharset is used when no BOM, rule, or fallback is available
// (spec.md §4.1 "UTF-8 is the default").
const DefaultCharset = "utf-8"

// charsetRulePrefix is the exact byte sequence a CSS stylesheet's leading
// @charset rule must begin with; anything else is not a charset rule.
var charsetRulePrefix = []byte(`@charset "`)

// sniffBOM reports the encoding implied by a leading byte-order mark, if
// any, and how many bytes it occupies.
func sniffBOM(data []byte) (name string, n int) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8", 3
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be", 2
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le", 2
	default:
		return "", 0
	}
}

// sniffCharsetRule extracts the charset name from a leading
// `@charset "NAME";` rule, per the literal byte grammar in spec.md §4.1 (no
// escapes, no leading whitespace, double quotes only, case-sensitive
// ASCII-only prefix match on the raw bytes before any decoding occurs).
func sniffCharsetRule(data []byte) (name string, ok bool) {
	if !bytes.HasPrefix(data, charsetRulePrefix) {
		return "", false
	}
	rest := data[len(charsetRulePrefix):]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	if end+1 >= len(rest) || rest[end+1] != ';' {
		return "", false
	}
	return string(rest[:end]), true
}

// Error reports that a named charset could not be resolved to a decoder;
// spec.md §4.1 treats this as unrecoverable.
type Error struct {
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("charset: unknown encoding %q", e.Name)
}

// Result describes how input bytes were decoded.
type Result struct {
	Text   string
	Name   string
	Source Source
}

// Decode resolves the charset of data using, in priority order, a leading
// BOM, a leading @charset rule, the supplied fallback, then DefaultCharset,
// and returns the bytes decoded to UTF-8 text with any BOM stripped; a
// leading @charset rule stays in the text. It also normalizes line endings and NUL bytes per
// the preprocessing step in spec.md §3.3.
func Decode(data []byte, fallback string) (*Result, error) {
	var (
		name   string
		source Source
		strip  int
	)

	if bomName, n := sniffBOM(data); n > 0 {
		name, source, strip = bomName, SourceBOM, n
	} else if ruleName, ok := sniffCharsetRule(data); ok {
		name, source = ruleName, SourceRule
	} else if fallback != "" {
		name, source = fallback, SourceFallback
	} else {
		name, source = DefaultCharset, SourceDefault
	}

	if source == SourceRule {
		name = canonicalizeRuleCharset(name)
	}

	enc, err := lookup(name)
	if err != nil {
		return nil, errors.WithStack(&Error{Name: name})
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data[strip:])
	if err != nil {
		return nil, errors.Wrapf(err, "charset: decoding as %s", name)
	}

	return &Result{
		Text:   preprocess(string(decoded)),
		Name:   name,
		Source: source,
	}, nil
}

// canonicalizeRuleCharset collapses utf-16be/utf-16le to utf-8 for a name
// supplied by an @charset rule: a UTF-16 stream can only have reached the
// point of containing a readable "@charset" rule because a BOM already
// picked its byte order, so the rule's own claim to UTF-16 is redundant and
// must be read back as the UTF-8 text it was decoded from (spec.md §4.1).
func canonicalizeRuleCharset(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-16be", "utf-16le":
		return "utf-8"
	default:
		return name
	}
}

// lookup resolves a charset name (case-insensitively, trimming surrounding
// whitespace) to a golang.org/x/text encoding, accepting both IANA names
// ("utf-8", "iso-8859-1") and the small set of aliases CSS implementations
// commonly see ("utf8", "latin1").
func lookup(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "utf8":
		name = "utf-8"
	case "latin1":
		name = "iso-8859-1"
	}
	return htmlindex.Get(name)
}

// preprocess applies the CSS input stream preprocessing rules: CRLF and
// lone CR/FF become LF, and NUL becomes U+FFFD.
func preprocess(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			b.WriteByte('\n')
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\f':
			b.WriteByte('\n')
		case 0:
			b.WriteRune('�')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Reader wraps Decode for streaming callers, reading r fully before
// decoding since a BOM or @charset rule can only be known once the
// necessary leading bytes are in hand.
func Reader(r io.Reader, fallback string) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "charset: reading input")
	}
	return Decode(data, fallback)
}
