// Package shorthand expands a CSS shorthand declaration (margin, border,
// font, ...) into its constituent longhand declarations. Matching is
// greedy and left-to-right, classifying each value term by shape (length,
// color, URL, keyword) rather than validating it against the full property
// grammar — full property/value semantic validation is out of scope (see
// spec.md's Non-goals), so a value term this package cannot classify is
// never rejected: depending on the property it fills a remaining longhand
// slot (the margin/padding-style positional expansions, font-family,
// flex-basis) or is left out of the expansion (background, border, outline,
// list-style).
package shorthand

import (
	"strings"
	"sync"

	"github.com/benbjohnson/css/ast"
)

// Descriptor describes one shorthand property: its name, the longhand
// properties it expands into (in canonical order), and the function that
// performs the expansion.
type Descriptor struct {
	Name      string
	Longhands []string
	split     func(terms []ast.ExpressionMember) map[string]*ast.Expression
}

var (
	mu  sync.RWMutex
	reg = map[string]*Descriptor{}
)

// Register installs d in the global registry, keyed case-insensitively by
// d.Name. A later Register for the same name replaces the earlier one —
// used at package init to install the built-ins and available to callers
// wanting to add or override a descriptor.
func Register(d *Descriptor) {
	mu.Lock()
	defer mu.Unlock()
	reg[strings.ToLower(d.Name)] = d
}

// Lookup returns the Descriptor registered for name, if any.
func Lookup(name string) (*Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := reg[strings.ToLower(name)]
	return d, ok
}

// Split expands d into its longhand declarations in Descriptor.Longhands
// order. If d.Name names no registered shorthand, Split returns a
// single-element slice containing d unchanged.
func Split(d *ast.Declaration) []*ast.Declaration {
	desc, ok := Lookup(d.Name)
	if !ok || d.Value == nil {
		return []*ast.Declaration{d}
	}
	byName := desc.split(d.Value.Members)
	if byName == nil {
		return []*ast.Declaration{d}
	}
	out := make([]*ast.Declaration, 0, len(desc.Longhands))
	for _, name := range desc.Longhands {
		val, ok := byName[name]
		if !ok {
			continue
		}
		out = append(out, &ast.Declaration{Name: name, Value: val, Important: d.Important})
	}
	if len(out) == 0 {
		return []*ast.Declaration{d}
	}
	return out
}

func single(m ast.ExpressionMember) *ast.Expression {
	return &ast.Expression{Members: []ast.ExpressionMember{m}}
}

func multi(ms ...ast.ExpressionMember) *ast.Expression {
	return &ast.Expression{Members: ms}
}

// termIdent returns the lowercased identifier text of m, or "" if m isn't
// a bare keyword term.
func termIdent(m ast.ExpressionMember) string {
	t, ok := m.(*ast.TermSimple)
	if !ok || t.Kind != ast.TermIdent {
		return ""
	}
	return strings.ToLower(t.Raw)
}

// isLength reports whether m is a dimension, a bare zero, or a percentage —
// the shapes a length-or-percentage value takes.
func isLength(m ast.ExpressionMember) bool {
	t, ok := m.(*ast.TermSimple)
	if !ok {
		return false
	}
	switch t.Kind {
	case ast.TermDimension, ast.TermPercentage:
		return true
	case ast.TermNumber:
		return t.Number == 0
	}
	return false
}

// isColor reports whether m is a hex color or a recognized color keyword.
func isColor(m ast.ExpressionMember) bool {
	if t, ok := m.(*ast.TermSimple); ok && t.Kind == ast.TermHash {
		return true
	}
	id := termIdent(m)
	if id == "" {
		return false
	}
	if id == "transparent" || id == "currentcolor" || strings.HasSuffix(id, "rgb") || strings.HasSuffix(id, "rgba") {
		return true
	}
	_, ok := colorKeywords[id]
	return ok
}

// colorKeywords is a small set of common CSS named colors, enough to
// classify typical shorthand values; it is not the full CSS color list.
var colorKeywords = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "orange": true, "purple": true, "gray": true, "grey": true,
	"silver": true, "maroon": true, "navy": true, "teal": true, "olive": true,
	"lime": true, "aqua": true, "fuchsia": true, "pink": true, "brown": true,
	"inherit": true, "initial": true, "unset": true,
}

func isURL(m ast.ExpressionMember) bool {
	_, ok := m.(*ast.TermURI)
	return ok
}
