/*
Package css implements a CSS 2.1/CSS3 scanner, parser, and serializer: a
low-level library for extracting a complete, typed abstract syntax tree
from raw CSS text and writing it back out.

This package can be used for building tools to validate, optimize, and
format CSS text; cmd/csscompress is one such tool, a directory minifier
built on top of it.

Basics

CSS processing happens in three steps. First charset.Decode resolves the
input's byte encoding (a leading byte-order mark, a literal @charset rule,
or a caller-supplied fallback) and produces UTF-8 text. Second,
scanner.Scanner breaks that text into token.Token values — identifiers,
strings, numbers, punctuation. Third, parser.Parser consumes the token
stream directly into a typed ast.Stylesheet: selectors, declarations,
media queries, @supports conditions, and calc() expressions are all parsed
into their own AST shapes rather than left as generic component-value
trees, so callers never need to write their own at-rule grammars.

Abstract Syntax Tree

At the top level an ast.Stylesheet holds an ordered list of TopLevelRule
values: StyleRule, MediaRule, SupportsRule, PageRule, FontFaceRule,
KeyframesRule, ViewportRule, ImportRule, NamespaceRule, and — for any
at-rule this package doesn't give a dedicated shape — UnknownRule, which
captures the rule's name, prelude, and body literally.

A StyleRule pairs a list of Selectors with a list of Declarations. A
Selector is an ordered list of SelectorMember values (element, class, ID,
attribute, and pseudo selectors, joined by Combinators). A Declaration's
Value is an Expression: a list of terms, functions, operators, and — for
calc() — a nested Math expression tree.

Error recovery

parser.Parser supports two recovery disciplines (parser.Mode): tolerant
mode skips a malformed construct and resumes at the next ';' or '}', the
way a browser would; strict mode stops accumulating the current
rule/declaration list at the first error. Both report every recoverable
error they skip past through a parser.RecoverableErrorHandler before
deciding what to do next.

Serialization

writer.Writer renders any ast.Node back to CSS text under a
writer.Settings: pretty or optimized (minified) output, per-rule-kind
filters, URL quoting, and a CSS 2.1 compatibility mode that rejects
CSS3-only constructs. The visit package walks a Stylesheet depth-first for
callers that want to inspect or rewrite it (a URLVisitor that rewrites
every url() term in place, for instance) without serializing it.
*/
package css
