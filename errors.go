package monocle

import (
	"errors"
	"strings"
)

// Decode failures. Every decoder error wraps exactly one of these; test with
// errors.Is.
var (
	// ErrMalformedData reports a tagged value with an unknown tag or a string
	// payload that is not valid UTF-8.
	ErrMalformedData = errors.New("malformed data")
	// ErrDataTooDeep reports a tagged tree nested beyond the decoder's depth
	// limit. A cycle in a corrupted resource surfaces as this error.
	ErrDataTooDeep = errors.New("data too deep")
	// ErrUnknownEventKind reports a raw event whose kind is outside EventKind.
	ErrUnknownEventKind = errors.New("unknown event kind")
	// ErrNotImplemented reports an event kind the engine does not populate yet
	// (collisions).
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnresolvedObject reports an object event whose token is not in the
	// registry. This means the registry and the engine disagree.
	ErrUnresolvedObject = errors.New("unresolved object reference")
)

// Engine-side failures.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidConfig    = errors.New("invalid config")
)

// DecodeError describes where a decode failed. Path is the position inside a
// tagged tree ("[2]", "a", "b" for [2].a.b) and is empty for event decoding.
type DecodeError struct {
	Op     string
	Path   []string
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("monocle: ")
	b.WriteString(e.Op)
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(joinPath(e.Path))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// joinPath renders path segments, keeping index segments glued to their
// parent: ["[0]", "a", "b"] -> "[0].a.b".
func joinPath(path []string) string {
	var b strings.Builder
	for i, seg := range path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
