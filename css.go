// Package css ties together charset decoding, tokenizing, parsing, and
// serialization behind a single Settings-driven entry point, the way a
// caller who doesn't need the subpackages' internals would want to use this
// module.
package css

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/benbjohnson/css/ast"
	"github.com/benbjohnson/css/charset"
	"github.com/benbjohnson/css/internal/log"
	"github.com/benbjohnson/css/parser"
	"github.com/benbjohnson/css/scanner"
	"github.com/benbjohnson/css/visit"
	"github.com/benbjohnson/css/writer"
)

// Settings configures both reading (parsing) and writing (serializing) a
// stylesheet. The zero value parses in strict mode with UTF-8 fallback
// charset, and its zero writer.Settings leave every rule-kind filter off;
// DefaultSettings gives the tolerant, pretty-printing configuration.
type Settings struct {
	// FallbackCharset is used to decode the input when no BOM or leading
	// @charset rule is present (spec.md §4.1). Empty means UTF-8.
	FallbackCharset string

	// BrowserCompliant selects parser.TolerantMode when true (as
	// DefaultSettings sets it) and parser.StrictMode when false.
	BrowserCompliant bool

	RecoverableHandler   parser.RecoverableErrorHandler
	UnrecoverableHandler parser.UnrecoverableErrorHandler
	IllegalHandler       parser.IllegalCharacterHandler

	Writer writer.Settings
}

// DefaultSettings returns Settings that parse tolerantly and pretty-print.
func DefaultSettings() Settings {
	return Settings{
		BrowserCompliant: true,
		Writer:           writer.DefaultSettings(),
	}
}

func (s Settings) mode() parser.Mode {
	if s.BrowserCompliant {
		return parser.TolerantMode
	}
	return parser.StrictMode
}

func (s Settings) newParser() *parser.Parser {
	return &parser.Parser{
		Mode:                 s.mode(),
		RecoverableHandler:   s.RecoverableHandler,
		UnrecoverableHandler: s.UnrecoverableHandler,
		IllegalHandler:       s.IllegalHandler,
	}
}

// decode resolves source's charset and returns a token stream over it.
func decode(source []byte, settings Settings) (parser.TokenStream, error) {
	result, err := charset.Decode(source, settings.FallbackCharset)
	if err != nil {
		return nil, errors.Wrap(err, "css: decode")
	}
	sc := scanner.New(strings.NewReader(result.Text))
	return parser.NewLiveStream(sc), nil
}

// ReadStylesheet decodes source per settings, tokenizes it, and parses a
// complete stylesheet.
func ReadStylesheet(source []byte, settings Settings) (*ast.Stylesheet, error) {
	stream, err := decode(source, settings)
	if err != nil {
		return nil, err
	}
	ss, err := settings.newParser().ParseStylesheet(stream)
	if err != nil {
		log.Warnf("css: ReadStylesheet: %s", err)
	}
	return ss, err
}

// ReadDeclarationList decodes source per settings, tokenizes it, and parses
// a bare declaration list (an HTML "style" attribute's contents, or a
// single rule body reparsed standalone).
func ReadDeclarationList(source []byte, settings Settings) ([]*ast.Declaration, error) {
	stream, err := decode(source, settings)
	if err != nil {
		return nil, err
	}
	decls, err := settings.newParser().ParseDeclarationList(stream)
	if err != nil {
		log.Warnf("css: ReadDeclarationList: %s", err)
	}
	return decls, err
}

// WriteCSS serializes n using settings.Writer and returns the resulting CSS
// text.
func WriteCSS(n ast.Node, settings Settings) (string, error) {
	w := &writer.Writer{Settings: settings.Writer}
	return w.String(n)
}

// Visit walks ss with v (spec.md §4.5 "Visitor contract").
func Visit(ss *ast.Stylesheet, v visit.Visitor) {
	visit.Walk(ss, v)
}
