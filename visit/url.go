package visit

import "github.com/benbjohnson/css/ast"

// URLVisitor receives every URL term in a traversal. Rewrite, when set, is
// applied to each URL's value and the result written back into the AST in
// place — a "modifying URL visitor" per spec.md §4.5.
type URLVisitor struct {
	NopVisitor
	Rewrite func(uri string) string
}

func (u *URLVisitor) URLTerm(term *ast.TermURI, enclosing ast.TopLevelRule) {
	if u.Rewrite == nil {
		return
	}
	term.Value = u.Rewrite(term.Value)
}

// DeclarationVisitor receives every declaration along with its enclosing
// top-level rule. Handle is invoked for each one; it is nil-safe to leave
// unset.
type DeclarationVisitor struct {
	NopVisitor
	Handle func(decl *ast.Declaration, enclosing ast.TopLevelRule)
}

func (d *DeclarationVisitor) Declaration(decl *ast.Declaration, enclosing ast.TopLevelRule) {
	if d.Handle == nil {
		return
	}
	d.Handle(decl, enclosing)
}
