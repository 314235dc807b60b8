// Package errors provides structured errors and the diagnostic channel used
// by the rendering kernel.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error or diagnostic.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindStructure indicates a malformed AST entry.
	KindStructure
	// KindReserved indicates a mounting point named after a reserved property.
	KindReserved
	// KindAttachment indicates an instance already attached elsewhere.
	KindAttachment
	// KindParsing indicates a document decoding failure.
	KindParsing
	// KindVersion indicates an unsupported document format version.
	KindVersion
	// KindValue indicates a value of the wrong type written to an accessor.
	KindValue
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindReserved:
		return "reserved"
	case KindAttachment:
		return "attachment"
	case KindParsing:
		return "parsing"
	case KindVersion:
		return "version"
	case KindValue:
		return "value"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AnchorError wraps a lower-level failure with the operation that hit it.
type AnchorError struct {
	// Op is the operation that failed (e.g., "ast.ReadFile").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnchorError) Unwrap() error {
	return e.Err
}

// StructureError reports an AST that cannot be built. It is fatal for the
// build that produced it.
type StructureError struct {
	// Op is the operation that rejected the AST (e.g., "core.Build").
	Op string
	// Shape describes the offending entry, usually its Go type.
	Shape string
	// Detail is a human readable explanation.
	Detail string
}

func (e *StructureError) Error() string {
	if e.Shape != "" {
		return fmt.Sprintf("%s: not a standard AST: %s (%s)", e.Op, e.Detail, e.Shape)
	}
	return fmt.Sprintf("%s: not a standard AST: %s", e.Op, e.Detail)
}

// ValueError reports a value of the wrong type written to a mounting point.
type ValueError struct {
	Name string
	Want string
	Got  any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mounting point %q expects %s, got %T", e.Name, e.Want, e.Got)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "data.Notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Diagnostic is a non-fatal policy notification. Reporting one never changes
// the control flow of the operation that produced it.
type Diagnostic struct {
	// Kind is KindReserved or KindAttachment.
	Kind Kind
	// Name is the mounting point involved.
	Name string
	// Message is a human readable explanation.
	Message string
	// Timestamp is when the diagnostic was raised.
	Timestamp time.Time
}

func (d *Diagnostic) String() string {
	if d.Name != "" {
		return fmt.Sprintf("%s [%s]: %s", d.Name, d.Kind, d.Message)
	}
	return fmt.Sprintf("[%s]: %s", d.Kind, d.Message)
}

// Handler receives errors and diagnostics reported by the kernel.
type Handler interface {
	// HandleError is called when a wrapped error is reported.
	HandleError(err *AnchorError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleDiagnostic is called for policy violations.
	HandleDiagnostic(d *Diagnostic)
}
