package errors

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// installed wraps the global handler so it can live in an atomic.Pointer.
type installed struct{ h Handler }

var global atomic.Pointer[installed]

func init() {
	global.Store(&installed{h: &LogHandler{}})
}

// CurrentHandler returns the global handler.
func CurrentHandler() Handler {
	return global.Load().h
}

// SetHandler installs h as the global handler and returns the one it
// replaced, so tests can write defer SetHandler(SetHandler(h)).
// A nil h installs a quiet LogHandler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = &LogHandler{}
	}
	return global.Swap(&installed{h: h}).h
}

// route picks the handler for a report: h when set, the global one otherwise.
func route(h Handler) Handler {
	if h != nil {
		return h
	}
	return CurrentHandler()
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report sends err to the global handler, stamping it first.
func Report(err *AnchorError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	route(nil).HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	route(nil).HandlePanic(err)
}

// ReportDiagnostic sends d to h, or to the global handler when h is nil.
// Diagnostics never abort the operation that raised them.
func ReportDiagnostic(h Handler, d *Diagnostic) {
	if d == nil {
		return
	}
	stamp(&d.Timestamp)
	route(h).HandleDiagnostic(d)
}

// Recover turns a panic in the deferring function into a PanicError for op.
//
//	defer errors.Recover("data.Notify")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: string(debug.Stack())})
}
