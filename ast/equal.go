package ast

import "reflect"

// isNilNode reports whether n is a nil interface or a non-nil interface
// wrapping a nil pointer (e.g. a *Expression field left unset).
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Equal reports whether a and b are structurally equal, ignoring source
// locations (spec.md §4.4 "Equality").
func Equal(a, b Node) bool {
	an, bn := isNilNode(a), isNilNode(b)
	if an || bn {
		return an && bn
	}
	switch a := a.(type) {
	case *Stylesheet:
		b, ok := b.(*Stylesheet)
		return ok && equalRuleSlices(a.Rules, b.Rules)
	case *ImportRule:
		b, ok := b.(*ImportRule)
		return ok && a.URL == b.URL && a.Quoted == b.Quoted && equalMediaQueries(a.Media, b.Media)
	case *NamespaceRule:
		b, ok := b.(*NamespaceRule)
		return ok && a.Prefix == b.Prefix && a.URL == b.URL
	case *StyleRule:
		b, ok := b.(*StyleRule)
		if !ok || len(a.Selectors) != len(b.Selectors) || len(a.Declarations) != len(b.Declarations) {
			return false
		}
		for i := range a.Selectors {
			if !Equal(a.Selectors[i], b.Selectors[i]) {
				return false
			}
		}
		for i := range a.Declarations {
			if !Equal(a.Declarations[i], b.Declarations[i]) {
				return false
			}
		}
		return true
	case *MediaRule:
		b, ok := b.(*MediaRule)
		return ok && equalMediaQueries(a.Queries, b.Queries) && equalRuleSlices(a.Rules, b.Rules)
	case *PageRule:
		b, ok := b.(*PageRule)
		if !ok || !equalStrings(a.Selectors, b.Selectors) || len(a.Declarations) != len(b.Declarations) || len(a.MarginBlocks) != len(b.MarginBlocks) {
			return false
		}
		for i := range a.Declarations {
			if !Equal(a.Declarations[i], b.Declarations[i]) {
				return false
			}
		}
		for i := range a.MarginBlocks {
			if !Equal(a.MarginBlocks[i], b.MarginBlocks[i]) {
				return false
			}
		}
		return true
	case *PageMarginBlock:
		b, ok := b.(*PageMarginBlock)
		return ok && a.Name == b.Name && equalDeclarations(a.Declarations, b.Declarations)
	case *FontFaceRule:
		b, ok := b.(*FontFaceRule)
		return ok && equalDeclarations(a.Declarations, b.Declarations)
	case *KeyframesRule:
		b, ok := b.(*KeyframesRule)
		if !ok || a.AtKeyword != b.AtKeyword || a.Name != b.Name || len(a.Blocks) != len(b.Blocks) {
			return false
		}
		for i := range a.Blocks {
			if !Equal(a.Blocks[i], b.Blocks[i]) {
				return false
			}
		}
		return true
	case *KeyframesBlock:
		b, ok := b.(*KeyframesBlock)
		return ok && equalStrings(a.Selectors, b.Selectors) && equalDeclarations(a.Declarations, b.Declarations)
	case *ViewportRule:
		b, ok := b.(*ViewportRule)
		return ok && equalDeclarations(a.Declarations, b.Declarations)
	case *SupportsRule:
		b, ok := b.(*SupportsRule)
		return ok && Equal(a.Condition, b.Condition) && equalRuleSlices(a.Rules, b.Rules)
	case *UnknownRule:
		b, ok := b.(*UnknownRule)
		return ok && a.Name == b.Name && a.Prelude == b.Prelude && a.Body == b.Body && a.HasBlock == b.HasBlock

	case *Selector:
		b, ok := b.(*Selector)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *ElementSelector:
		b, ok := b.(*ElementSelector)
		return ok && a.Namespace == b.Namespace && a.Name == b.Name
	case *UniversalSelector:
		b, ok := b.(*UniversalSelector)
		return ok && a.Namespace == b.Namespace
	case *IDSelector:
		b, ok := b.(*IDSelector)
		return ok && a.Name == b.Name
	case *ClassSelector:
		b, ok := b.(*ClassSelector)
		return ok && a.Name == b.Name
	case *AttributeSelector:
		b, ok := b.(*AttributeSelector)
		return ok && a.Namespace == b.Namespace && a.Name == b.Name && a.Op == b.Op &&
			a.Value == b.Value && a.Quoted == b.Quoted && a.CaseFlag == b.CaseFlag
	case *PseudoClassSelector:
		b, ok := b.(*PseudoClassSelector)
		return ok && a.Name == b.Name
	case *PseudoElementSelector:
		b, ok := b.(*PseudoElementSelector)
		return ok && a.Name == b.Name
	case *FunctionalPseudoSelector:
		b, ok := b.(*FunctionalPseudoSelector)
		if !ok || a.Name != b.Name || len(a.Arguments) != len(b.Arguments) {
			return false
		}
		for i := range a.Arguments {
			if !Equal(a.Arguments[i], b.Arguments[i]) {
				return false
			}
		}
		return true
	case *NthExpression:
		b, ok := b.(*NthExpression)
		if !ok || a.Name != b.Name || a.A != b.A || a.B != b.B || len(a.Of) != len(b.Of) {
			return false
		}
		for i := range a.Of {
			if !Equal(a.Of[i], b.Of[i]) {
				return false
			}
		}
		return true
	case *Combinator:
		b, ok := b.(*Combinator)
		return ok && a.Kind == b.Kind

	case *Declaration:
		b, ok := b.(*Declaration)
		return ok && a.Name == b.Name && a.Important == b.Important && Equal(a.Value, b.Value)

	case *Expression:
		b, ok := b.(*Expression)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *TermSimple:
		b, ok := b.(*TermSimple)
		return ok && a.Kind == b.Kind && a.Raw == b.Raw && a.Number == b.Number && a.Unit == b.Unit && a.Quote == b.Quote
	case *TermURI:
		b, ok := b.(*TermURI)
		return ok && a.Value == b.Value && a.Quoted == b.Quoted
	case *Function:
		b, ok := b.(*Function)
		return ok && a.Name == b.Name && Equal(a.Arguments, b.Arguments)
	case *Operator:
		b, ok := b.(*Operator)
		return ok && a.Op == b.Op
	case *Math:
		b, ok := b.(*Math)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *MathProduct:
		b, ok := b.(*MathProduct)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *MathOperator:
		b, ok := b.(*MathOperator)
		return ok && a.Op == b.Op
	case *SumOperator:
		b, ok := b.(*SumOperator)
		return ok && a.Op == b.Op
	case *MathUnit:
		b, ok := b.(*MathUnit)
		return ok && Equal(a.Value, b.Value) && Equal(a.Group, b.Group)

	case *MediaQuery:
		b, ok := b.(*MediaQuery)
		if !ok || a.Modifier != b.Modifier || a.Medium != b.Medium || len(a.Features) != len(b.Features) {
			return false
		}
		for i := range a.Features {
			if !Equal(a.Features[i], b.Features[i]) {
				return false
			}
		}
		return true
	case *MediaFeature:
		b, ok := b.(*MediaFeature)
		return ok && a.Name == b.Name && Equal(a.Value, b.Value)

	case *SupportsCondition:
		b, ok := b.(*SupportsCondition)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case *SupportsDeclaration:
		b, ok := b.(*SupportsDeclaration)
		return ok && Equal(a.Declaration, b.Declaration)
	case *SupportsNot:
		b, ok := b.(*SupportsNot)
		return ok && Equal(a.Condition, b.Condition)
	case *SupportsOperator:
		b, ok := b.(*SupportsOperator)
		return ok && a.Kind == b.Kind
	case *SupportsGroup:
		b, ok := b.(*SupportsGroup)
		return ok && Equal(a.Condition, b.Condition)
	}
	panic("ast: Equal: unhandled node type")
}

func equalRuleSlices(a, b []TopLevelRule) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalDeclarations(a, b []*Declaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMediaQueries(a, b []*MediaQuery) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
