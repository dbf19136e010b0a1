package ast

// ImportRule is an @import rule: a URL plus an optional list of media
// queries (spec.md §3).
type ImportRule struct {
	node
	URL    string
	Quoted bool // true if URL came from a quoted string rather than url(...)
	Media  []*MediaQuery
}

// NamespaceRule is an @namespace rule: an optional prefix plus a URL.
type NamespaceRule struct {
	node
	Prefix string
	URL    string
}

// StyleRule is a selector list plus a declaration block.
type StyleRule struct {
	node
	Selectors    []*Selector
	Declarations []*Declaration
}

// AddDeclaration appends a declaration to the rule's block.
func (r *StyleRule) AddDeclaration(d *Declaration) {
	r.Declarations = append(r.Declarations, d)
}

// MediaRule is an @media block: one or more media queries plus nested
// top-level rules. Nesting of @media inside @media is permitted.
type MediaRule struct {
	node
	Queries []*MediaQuery
	Rules   []TopLevelRule
}

// PageRule is an @page rule: an optional list of page selectors (e.g.
// ":first") plus declarations and page-margin blocks.
type PageRule struct {
	node
	Selectors    []string
	Declarations []*Declaration
	MarginBlocks []*PageMarginBlock
}

// PageMarginBlock is a margin at-rule nested in @page, e.g. @top-left-corner.
type PageMarginBlock struct {
	node
	Name         string
	Declarations []*Declaration
}

// FontFaceRule is an @font-face rule: just a declaration list.
type FontFaceRule struct {
	node
	Declarations []*Declaration
}

// KeyframesRule is an @keyframes rule (or a vendor-prefixed variant, recorded
// in AtKeyword) naming an animation plus an ordered list of keyframe blocks.
type KeyframesRule struct {
	node
	AtKeyword string // "keyframes", "-webkit-keyframes", etc.
	Name      string
	Blocks    []*KeyframesBlock
}

// KeyframesBlock is one block inside @keyframes: a set of selectors (each
// "from", "to", or a percentage) plus declarations.
type KeyframesBlock struct {
	node
	Selectors    []string
	Declarations []*Declaration
}

// ViewportRule is an @viewport rule: just a declaration list.
type ViewportRule struct {
	node
	Declarations []*Declaration
}

// SupportsRule is an @supports rule: a condition plus nested top-level rules.
type SupportsRule struct {
	node
	Condition *SupportsCondition
	Rules     []TopLevelRule
}

// UnknownRule captures an unrecognized at-rule literally: its name, the
// literal text of its prelude, and the literal text of its body (if any),
// per spec.md §3's "open extensibility" requirement.
type UnknownRule struct {
	node
	Name     string
	Prelude  string
	Body     string // empty and HasBlock false if the rule ended with ';'
	HasBlock bool
}
