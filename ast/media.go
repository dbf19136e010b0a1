package ast

// MediaQueryModifier is the optional "only"/"not" prefix on a media query.
type MediaQueryModifier int

const (
	NoModifier MediaQueryModifier = iota
	OnlyModifier
	NotModifier
)

// MediaFeature is a single "(name: value)" test within a media query,
// implicitly joined to its siblings by "and" (spec.md §3 "Media query").
type MediaFeature struct {
	node
	Name  string
	Value *Expression // nil for a boolean feature like "(color)"
}

// MediaQuery is an optional modifier, an optional medium identifier, and an
// ordered list of feature expressions.
type MediaQuery struct {
	node
	Modifier MediaQueryModifier
	Medium   string
	Features []*MediaFeature
}
