package errors

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogHandler is a Handler that logs to stderr.
type LogHandler struct {
	// Verbose enables detailed output including kinds, timestamps and stack traces.
	Verbose bool
	// Out overrides the destination. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an AnchorError.
func (h *LogHandler) HandleError(err *AnchorError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[anchor error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(h.out(), "[anchor error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(h.out(), "[anchor panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(h.out(), "[anchor panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleDiagnostic logs a Diagnostic.
func (h *LogHandler) HandleDiagnostic(d *Diagnostic) {
	if d == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[anchor diagnostic] %s %s\n", d.Timestamp.Format(time.RFC3339), d)
		return
	}
	fmt.Fprintf(h.out(), "[anchor diagnostic] %s\n", d.Message)
}
