// Package writer serializes an ast.Stylesheet (or any individual node) back
// to CSS text, generalizing the teacher's single hard-coded Printer
// (_examples/benbjohnson-css/printer.go) into a settings-driven writer with
// pretty and optimized code paths.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/benbjohnson/css/ast"
)

// NewLineMode selects the line terminator the writer emits.
type NewLineMode int

const (
	// DefaultNewLine uses the platform's conventional terminator ("\n").
	DefaultNewLine NewLineMode = iota
	LF
	CRLF
	CR
)

func (m NewLineMode) text() string {
	switch m {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// WriterError reports a construct that is illegal under the requested CSS
// version (spec.md §4.5 "WriterError"). It is not recoverable: the
// serialize call fails outright.
type WriterError struct {
	Construct string
}

func (e *WriterError) Error() string {
	return fmt.Sprintf("css: %s requires CSS3 but Css21Compat is set", e.Construct)
}

// Settings configures a Writer. The zero value pretty-prints with a
// two-space indent but leaves every rule-kind filter off, so only import
// and style rules are written; DefaultSettings turns every filter on.
type Settings struct {
	// OptimizedOutput omits all optional whitespace, newlines, and trailing
	// ';' when set; otherwise the writer pretty-prints.
	OptimizedOutput bool
	// RemoveUnnecessaryCode omits empty rule bodies and empty declaration
	// blocks.
	RemoveUnnecessaryCode bool
	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
	// NewLineMode selects the line terminator in pretty mode.
	NewLineMode NewLineMode
	// QuoteURLs forces url(...) tokens to be quoted even when a bareword
	// form is legal.
	QuoteURLs bool
	// WriteHeaderText, when set, emits HeaderText as a banner comment before
	// any rule.
	WriteHeaderText bool
	HeaderText      string

	// Per-kind filters: when false, that rule kind is silently skipped.
	WriteNamespaceRules bool
	WriteFontFaceRules  bool
	WriteKeyframesRules bool
	WriteMediaRules     bool
	WritePageRules      bool
	WriteViewportRules  bool
	WriteSupportsRules  bool
	WriteUnknownRules   bool

	// Css21Compat, when set, fails serialization of any CSS3-only
	// construct (@supports, calc(), @keyframes) with a *WriterError.
	Css21Compat bool
}

// DefaultSettings returns pretty-printing Settings with every filter on.
func DefaultSettings() Settings {
	return Settings{
		Indent:              "  ",
		WriteNamespaceRules: true,
		WriteFontFaceRules:  true,
		WriteKeyframesRules: true,
		WriteMediaRules:     true,
		WritePageRules:      true,
		WriteViewportRules:  true,
		WriteSupportsRules:  true,
		WriteUnknownRules:   true,
	}
}

// Writer renders ast nodes to CSS text according to Settings.
type Writer struct {
	Settings Settings
}

// New returns a Writer using DefaultSettings.
func New() *Writer {
	w := &Writer{Settings: DefaultSettings()}
	return w
}

func (w *Writer) indent() string {
	if w.Settings.Indent == "" {
		return "  "
	}
	return w.Settings.Indent
}

func (w *Writer) newline() string {
	return w.Settings.NewLineMode.text()
}

// state tracks the output cursor's mutable per-call context: the
// accumulating error and the current indent depth.
type state struct {
	w      io.Writer
	depth  int
	err    error
	quoted bool // QuoteURLs, hoisted for quick access
}

func (s *state) write(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}

func (s *state) writeString(str string) {
	s.write([]byte(str))
}

// Fprint writes n to dst, returning the first write or construct error
// encountered.
func (w *Writer) Fprint(dst io.Writer, n ast.Node) error {
	s := &state{w: dst, quoted: w.Settings.QuoteURLs}
	if w.Settings.WriteHeaderText && w.Settings.HeaderText != "" {
		s.writeString("/* " + w.Settings.HeaderText + " */")
		s.writeString(w.pretty(s, "\n"))
	}
	w.write(s, n)
	return s.err
}

// String renders n to a string using w's Settings.
func (w *Writer) String(n ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := w.Fprint(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// pretty returns str when OptimizedOutput is unset, and "" otherwise — a
// shorthand for the many call sites that emit whitespace only in pretty
// mode.
func (w *Writer) pretty(s *state, str string) string {
	if w.Settings.OptimizedOutput {
		return ""
	}
	if str == "\n" {
		return w.newline()
	}
	return str
}

func (w *Writer) indentPrefix(depth int) string {
	if w.Settings.OptimizedOutput {
		return ""
	}
	return strings.Repeat(w.indent(), depth)
}

func (w *Writer) fail(s *state, construct string) {
	if s.err == nil {
		s.err = &WriterError{Construct: construct}
	}
}

// write is the type-switch dispatcher over every ast.Node kind, grounded on
// the teacher's Printer.Fprint switch.
func (w *Writer) write(s *state, n ast.Node) {
	if s.err != nil {
		return
	}
	switch v := n.(type) {
	case *ast.Stylesheet:
		w.writeStylesheet(s, v)
	case ast.TopLevelRule:
		w.writeTopLevelRule(s, v, 0)
	case *ast.Selector:
		w.writeSelector(s, v)
	case *ast.Declaration:
		w.writeDeclaration(s, v)
	case *ast.Expression:
		w.writeExpression(s, v)
	case *ast.MediaQuery:
		w.writeMediaQuery(s, v)
	case *ast.SupportsCondition:
		w.writeSupportsCondition(s, v)
	default:
		w.fail(s, fmt.Sprintf("unsupported node type %T", n))
	}
}

func (w *Writer) writeStylesheet(s *state, ss *ast.Stylesheet) {
	for i, r := range ss.Rules {
		if i > 0 {
			s.writeString(w.pretty(s, "\n"))
		}
		w.writeTopLevelRule(s, r, 0)
		if s.err != nil {
			return
		}
	}
}
