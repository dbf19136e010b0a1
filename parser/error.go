package parser

import (
	"fmt"
	"sync"

	"github.com/benbjohnson/css/internal/log"
	"github.com/benbjohnson/css/token"
)

// Mode selects the parser's error-recovery discipline (spec.md §4.3).
type Mode int

const (
	// StrictMode invokes the recoverable-error handler. A token that cannot
	// begin a declaration ends the current declaration list, keeping what was
	// built so far; an invalid declaration is dropped and the list goes on,
	// as in TolerantMode. A handler that panics aborts the
	// whole parse and the panic value is delivered to the
	// unrecoverable-error handler.
	StrictMode Mode = iota
	// TolerantMode ("browser-compliant") invokes the handler, skips to the
	// next synchronization point (';' or the enclosing '}'), drops the
	// malformed construct, and keeps parsing.
	TolerantMode
)

// RecoverableParseError describes a structural error the parser can
// synchronize past (spec.md §7).
type RecoverableParseError struct {
	Message  string
	Pos      token.Pos
	LastGood token.Token // last valid token before the error
	Expected []string    // token/construct names the parser expected
}

func (e *RecoverableParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line+1, e.Pos.Char)
}

// UnexpectedRuleError reports an otherwise well-formed at-rule that is not
// permitted in its context (e.g. @charset after the first token).
type UnexpectedRuleError struct {
	Name    string
	Message string
	Pos     token.Pos
}

func (e *UnexpectedRuleError) Error() string {
	return fmt.Sprintf("unexpected @%s: %s", e.Name, e.Message)
}

// UnrecoverableParseError describes an error from which no synchronization
// point exists. The read call yields no AST when this is produced.
type UnrecoverableParseError struct {
	Message  string
	Pos      token.Pos
	LastGood token.Token
	Cause    error
}

func (e *UnrecoverableParseError) Error() string {
	return fmt.Sprintf("unrecoverable parse error: %s at %d:%d", e.Message, e.Pos.Line+1, e.Pos.Char)
}

func (e *UnrecoverableParseError) Unwrap() error { return e.Cause }

// RecoverableErrorHandler receives every recoverable/unexpected-rule error
// encountered during a parse, in source order (spec.md §5).
type RecoverableErrorHandler interface {
	HandleRecoverable(err error)
}

// UnrecoverableErrorHandler receives the single unrecoverable error that
// terminates a parse, if any.
type UnrecoverableErrorHandler interface {
	HandleUnrecoverable(err error)
}

// IllegalCharacterHandler receives illegal-character events from the lexer
// (spec.md §4.2).
type IllegalCharacterHandler interface {
	HandleIllegalCharacter(ch rune, pos token.Pos)
}

// RecoverableErrorHandlerFunc adapts a function to a RecoverableErrorHandler.
type RecoverableErrorHandlerFunc func(err error)

func (f RecoverableErrorHandlerFunc) HandleRecoverable(err error) { f(err) }

// IgnoreHandler silently discards every recoverable error.
type IgnoreHandler struct{}

func (IgnoreHandler) HandleRecoverable(error) {}

// LogHandler reports every recoverable error through internal/log.
type LogHandler struct {
	Logger *log.Logger // nil uses the package default logger
}

func (h LogHandler) HandleRecoverable(err error) {
	if h.Logger != nil {
		h.Logger.Warnf("css: %s", err)
		return
	}
	log.Warnf("css: %s", err)
}

// PanicHandler re-panics every recoverable error, escalating it to an
// unrecoverable failure. Used by callers that want any malformed
// construct, however small, to abort the parse.
type PanicHandler struct{}

func (PanicHandler) HandleRecoverable(err error) { panic(err) }

// CollectHandler accumulates every recoverable error into Errors and
// optionally delegates to an Inner handler as each one arrives.
type CollectHandler struct {
	Errors []error
	Inner  RecoverableErrorHandler
}

func (h *CollectHandler) HandleRecoverable(err error) {
	h.Errors = append(h.Errors, err)
	if h.Inner != nil {
		h.Inner.HandleRecoverable(err)
	}
}

// defaultHandler is the process-wide fallback used when a caller's Settings
// omits a RecoverableErrorHandler (spec.md §5: "Error-handler defaults are
// held in a process-wide registry behind a reader/writer lock").
var (
	defaultHandlerMu sync.RWMutex
	defaultHandler   RecoverableErrorHandler = IgnoreHandler{}
)

// DefaultRecoverableErrorHandler returns the process-wide default handler.
func DefaultRecoverableErrorHandler() RecoverableErrorHandler {
	defaultHandlerMu.RLock()
	defer defaultHandlerMu.RUnlock()
	return defaultHandler
}

// SetDefaultRecoverableErrorHandler installs the process-wide default
// handler used by parses whose Settings do not specify one.
func SetDefaultRecoverableErrorHandler(h RecoverableErrorHandler) {
	defaultHandlerMu.Lock()
	defer defaultHandlerMu.Unlock()
	defaultHandler = h
}
