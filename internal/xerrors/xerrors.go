// Package xerrors centralizes the error taxonomy shared by every tvgraph
// package: out-of-memory, read-only, invalid-argument, unsupported, and I/O
// failures. Every package in this module wraps its sentinel errors with
// errors.New from here instead of declaring ad hoc per-package sentinels,
// so callers can gate behavior with a single errors.Is check regardless of
// which package produced the failure.
package xerrors

import "errors"

// Kind classifies a tvgraph error into one of the taxonomy buckets named
// in the core engine's error handling design. Kind values are comparable
// and safe to switch on.
type Kind int

const (
	// KindOutOfMemory marks an allocation failure during a bucket or
	// table growth. The operation is rolled back; object invariants are
	// preserved.
	KindOutOfMemory Kind = iota

	// KindReadOnly marks a write attempted against a READONLY object.
	KindReadOnly

	// KindInvalidArgument marks a flag mismatch, an out-of-range bit
	// exponent, or a malformed input to an operation requiring a
	// nonempty argument.
	KindInvalidArgument

	// KindUnsupported marks an operation that is well-formed but not
	// defined for the receiver's configuration (e.g. connected
	// components on a directed graph).
	KindUnsupported

	// KindIoError marks a file or format failure during binary
	// persistence.
	KindIoError
)

// String renders a Kind for error messages and test failure output.
func (k Kind) String() string {
	switch k {
	case KindOutOfMemory:
		return "out of memory"
	case KindReadOnly:
		return "read only"
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnsupported:
		return "unsupported"
	case KindIoError:
		return "io error"
	default:
		return "unknown"
	}
}

// Error is a taxonomy-tagged error. Two Errors with the same Kind compare
// equal under errors.Is regardless of message, which lets callers match on
// the sentinel returned by Sentinel(kind) even through fmt.Errorf("%w", ...)
// wrapping.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.msg }

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, xerrors.Sentinel(xerrors.KindReadOnly)) matches any
// wrapped Error of that Kind, not just a pointer-identical instance.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an Error of the given Kind with a message.
func New(kind Kind, msg string) *Error { return &Error{Kind: kind, msg: msg} }

// sentinels are the canonical zero-message instances returned by Sentinel,
// suitable for errors.Is comparisons at call sites.
var sentinels = map[Kind]*Error{
	KindOutOfMemory:     {Kind: KindOutOfMemory, msg: "allocation failed"},
	KindReadOnly:        {Kind: KindReadOnly, msg: "object is read-only"},
	KindInvalidArgument: {Kind: KindInvalidArgument, msg: "invalid argument"},
	KindUnsupported:     {Kind: KindUnsupported, msg: "unsupported operation"},
	KindIoError:         {Kind: KindIoError, msg: "i/o failure"},
}

// Sentinel returns the canonical error value for a Kind, for use with
// errors.Is at call sites that do not need a custom message.
func Sentinel(kind Kind) error { return sentinels[kind] }

// Of reports whether err carries the given Kind, walking the error chain
// via errors.As.
func Of(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
