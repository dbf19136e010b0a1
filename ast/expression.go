package ast

// Expression is an ordered list of value tokens and sub-expressions
// (spec.md §3 "Expression").
type Expression struct {
	node
	Members []ExpressionMember
}

// ExpressionMember is the closed sum type of value-member kinds.
type ExpressionMember interface {
	Node
	expressionMember()
}

func (*TermSimple) expressionMember() {}
func (*TermURI) expressionMember()    {}
func (*Function) expressionMember()   {}
func (*Math) expressionMember()       {}
func (*Operator) expressionMember()   {}

// TermKind distinguishes the forms a TermSimple can take.
type TermKind int

const (
	TermNumber TermKind = iota
	TermPercentage
	TermDimension
	TermIdent
	TermHash
	TermString
	TermUnicodeRange
)

// TermSimple is a numeric literal, identifier, hash color, string, or
// unicode-range. Raw holds the token text as the scanner produced it: a
// number keeps its sign and leading zero, a string's quotes are not part of
// Raw (Quote records the quote character), and escape sequences are decoded,
// so an escaped identifier or string does not round-trip byte-identically.
type TermSimple struct {
	node
	Kind   TermKind
	Raw    string
	Number float64 // meaningful for TermNumber/TermPercentage/TermDimension
	Unit   string   // meaningful for TermDimension
	Quote  byte     // meaningful for TermString: '"' or '\''
}

// TermURI is a url(...) token. Quoted records whether the source used a
// quoted string inside url(...) so quoting style can be preserved unless
// writer.Settings.QuoteURLs forces a form.
type TermURI struct {
	node
	Value  string
	Quoted bool
	Quote  byte
}

// Function is a functional notation: a name plus a nested Expression of
// arguments. Commas between arguments are represented as Operator(',')
// members inside that Expression.
type Function struct {
	node
	Name      string
	Arguments *Expression
}

// Operator is one of '/', ',', '=' appearing directly in an Expression.
type Operator struct {
	node
	Op byte
}

// Math is a calc(...) expression: an alternating list of MathProduct members
// and SumOperator members (spec.md §3 "Expression" / §8 calc() test case).
type Math struct {
	node
	Members []MathMember
}

// MathMember is the sum type of Math's top-level members.
type MathMember interface {
	Node
	mathMember()
}

func (*MathProduct) mathMember() {}
func (*SumOperator) mathMember() {}

// SumOperator is the '+' or '-' joining two MathProducts. The CSS grammar
// requires mandatory whitespace around it; that whitespace is part of the
// grammar, not formatting, and is therefore not separately recorded here —
// the writer always emits it.
type SumOperator struct {
	node
	Op byte // '+' or '-'
}

// MathProduct is a run of MathUnits joined by '*'/'/' operators, with no
// required whitespace around those operators.
type MathProduct struct {
	node
	Members []MathProductMember
}

// MathProductMember is the sum type of MathProduct's members.
type MathProductMember interface {
	Node
	mathProductMember()
}

func (*MathUnit) mathProductMember()     {}
func (*MathOperator) mathProductMember() {}

// MathOperator is the '*' or '/' joining two MathUnits within a MathProduct.
type MathOperator struct {
	node
	Op byte // '*' or '/'
}

// MathUnit is either a simple value (Value) or a parenthesized
// sub-expression (Group), exactly one of which is set.
type MathUnit struct {
	node
	Value ExpressionMember
	Group *Math
}
