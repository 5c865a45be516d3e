// Package errors provides structured error handling for framekit.
//
// Layout configuration mistakes and internal invariant violations abort a
// build; they reach the host as an *Error and are also passed to the
// process-wide [Handler]. Degenerate geometry (empty layouts, oversubscribed
// containers) is never an error.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid widget configuration, such as an
	// alignment outside the subset allowed for its axis.
	KindConfig
	// KindInvariant indicates an internal contract breach between the sizer,
	// the aligner and the builder.
	KindInvariant
	// KindDocument indicates a malformed widget document.
	KindDocument
	// KindTheme indicates a malformed theme file.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvariant:
		return "invariant"
	case KindDocument:
		return "document"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidAlign is matched by every [AlignError].
	ErrInvalidAlign = stderrors.New("invalid alignment")

	// ErrStaleDrawables is returned when a drawable list does not cover the
	// widget tree it is browsed against, typically because the tree changed
	// since the last build.
	ErrStaleDrawables = stderrors.New("drawables do not match widget tree")
)

// Error represents a structured framekit error.
type Error struct {
	// Op is the operation that failed (e.g., "rendering.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget describes the widget being processed, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AlignError reports an alignment value that is not legal for its axis.
type AlignError struct {
	// Axis is "x" or "y".
	Axis string
	// Field names the offending setting (e.g., "XAlign", "TitleAlign").
	Field string
	// Value is the rejected alignment.
	Value string
	// Allowed lists the legal alignments for the axis.
	Allowed []string
}

func (e *AlignError) Error() string {
	return fmt.Sprintf("%s alignment on the %s axis is %s but should be one of %s",
		e.Field, e.Axis, e.Value, strings.Join(e.Allowed, ", "))
}

// Is reports whether target is [ErrInvalidAlign].
func (e *AlignError) Is(target error) bool {
	return target == ErrInvalidAlign
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Tap").
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

// ErrorHandler receives errors reported by framekit.
type ErrorHandler interface {
	// HandleError is called when a build or browse pass fails.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
