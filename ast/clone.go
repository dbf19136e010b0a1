package ast

// Clone returns a deep copy of n that shares no mutable state with n
// (spec.md §4.4 "Clone semantics"). Clone(nil) returns nil.
func Clone(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *Stylesheet:
		c := &Stylesheet{node: n.node}
		for _, r := range n.Rules {
			c.Rules = append(c.Rules, Clone(r).(TopLevelRule))
		}
		return c
	case *ImportRule:
		c := *n
		c.Media = cloneMediaQueries(n.Media)
		return &c
	case *NamespaceRule:
		c := *n
		return &c
	case *StyleRule:
		c := &StyleRule{node: n.node}
		for _, s := range n.Selectors {
			c.Selectors = append(c.Selectors, Clone(s).(*Selector))
		}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		return c
	case *MediaRule:
		c := &MediaRule{node: n.node, Queries: cloneMediaQueries(n.Queries)}
		for _, r := range n.Rules {
			c.Rules = append(c.Rules, Clone(r).(TopLevelRule))
		}
		return c
	case *PageRule:
		c := &PageRule{node: n.node, Selectors: append([]string(nil), n.Selectors...)}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		for _, m := range n.MarginBlocks {
			c.MarginBlocks = append(c.MarginBlocks, Clone(m).(*PageMarginBlock))
		}
		return c
	case *PageMarginBlock:
		c := &PageMarginBlock{node: n.node, Name: n.Name}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		return c
	case *FontFaceRule:
		c := &FontFaceRule{node: n.node}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		return c
	case *KeyframesRule:
		c := &KeyframesRule{node: n.node, AtKeyword: n.AtKeyword, Name: n.Name}
		for _, b := range n.Blocks {
			c.Blocks = append(c.Blocks, Clone(b).(*KeyframesBlock))
		}
		return c
	case *KeyframesBlock:
		c := &KeyframesBlock{node: n.node, Selectors: append([]string(nil), n.Selectors...)}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		return c
	case *ViewportRule:
		c := &ViewportRule{node: n.node}
		for _, d := range n.Declarations {
			c.Declarations = append(c.Declarations, Clone(d).(*Declaration))
		}
		return c
	case *SupportsRule:
		c := &SupportsRule{node: n.node, Condition: Clone(n.Condition).(*SupportsCondition)}
		for _, r := range n.Rules {
			c.Rules = append(c.Rules, Clone(r).(TopLevelRule))
		}
		return c
	case *UnknownRule:
		c := *n
		return &c

	case *Selector:
		c := &Selector{node: n.node}
		for _, m := range n.Members {
			c.Members = append(c.Members, Clone(m).(SelectorMember))
		}
		return c
	case *ElementSelector:
		c := *n
		return &c
	case *UniversalSelector:
		c := *n
		return &c
	case *IDSelector:
		c := *n
		return &c
	case *ClassSelector:
		c := *n
		return &c
	case *AttributeSelector:
		c := *n
		return &c
	case *PseudoClassSelector:
		c := *n
		return &c
	case *PseudoElementSelector:
		c := *n
		return &c
	case *FunctionalPseudoSelector:
		c := &FunctionalPseudoSelector{node: n.node, Name: n.Name}
		for _, s := range n.Arguments {
			c.Arguments = append(c.Arguments, Clone(s).(*Selector))
		}
		return c
	case *NthExpression:
		c := &NthExpression{node: n.node, Name: n.Name, A: n.A, B: n.B}
		for _, s := range n.Of {
			c.Of = append(c.Of, Clone(s).(*Selector))
		}
		return c
	case *Combinator:
		c := *n
		return &c

	case *Declaration:
		c := &Declaration{node: n.node, Name: n.Name, Important: n.Important}
		if n.Value != nil {
			c.Value = Clone(n.Value).(*Expression)
		}
		return c

	case *Expression:
		c := &Expression{node: n.node}
		for _, m := range n.Members {
			c.Members = append(c.Members, Clone(m).(ExpressionMember))
		}
		return c
	case *TermSimple:
		c := *n
		return &c
	case *TermURI:
		c := *n
		return &c
	case *Function:
		c := &Function{node: n.node, Name: n.Name}
		if n.Arguments != nil {
			c.Arguments = Clone(n.Arguments).(*Expression)
		}
		return c
	case *Operator:
		c := *n
		return &c
	case *Math:
		c := &Math{node: n.node}
		for _, m := range n.Members {
			c.Members = append(c.Members, Clone(m).(MathMember))
		}
		return c
	case *MathProduct:
		c := &MathProduct{node: n.node}
		for _, m := range n.Members {
			c.Members = append(c.Members, Clone(m).(MathProductMember))
		}
		return c
	case *MathOperator:
		c := *n
		return &c
	case *SumOperator:
		c := *n
		return &c
	case *MathUnit:
		c := &MathUnit{node: n.node}
		if n.Value != nil {
			c.Value = Clone(n.Value).(ExpressionMember)
		}
		if n.Group != nil {
			c.Group = Clone(n.Group).(*Math)
		}
		return c

	case *MediaQuery:
		c := &MediaQuery{node: n.node, Modifier: n.Modifier, Medium: n.Medium}
		for _, f := range n.Features {
			c.Features = append(c.Features, Clone(f).(*MediaFeature))
		}
		return c
	case *MediaFeature:
		c := &MediaFeature{node: n.node, Name: n.Name}
		if n.Value != nil {
			c.Value = Clone(n.Value).(*Expression)
		}
		return c

	case *SupportsCondition:
		c := &SupportsCondition{node: n.node}
		for _, m := range n.Members {
			c.Members = append(c.Members, Clone(m).(SupportsMember))
		}
		return c
	case *SupportsDeclaration:
		c := &SupportsDeclaration{node: n.node}
		if n.Declaration != nil {
			c.Declaration = Clone(n.Declaration).(*Declaration)
		}
		return c
	case *SupportsNot:
		c := &SupportsNot{node: n.node}
		if n.Condition != nil {
			c.Condition = Clone(n.Condition).(*SupportsCondition)
		}
		return c
	case *SupportsOperator:
		c := *n
		return &c
	case *SupportsGroup:
		c := &SupportsGroup{node: n.node}
		if n.Condition != nil {
			c.Condition = Clone(n.Condition).(*SupportsCondition)
		}
		return c
	}
	panic("ast: Clone: unhandled node type")
}

func cloneMediaQueries(in []*MediaQuery) []*MediaQuery {
	var out []*MediaQuery
	for _, q := range in {
		out = append(out, Clone(q).(*MediaQuery))
	}
	return out
}
