package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of schema resolution failure.
type ErrorCode string

const (
	// ErrIdentifierUnresolvable indicates an identifier keyword value could
	// not be resolved against the current base URI.
	ErrIdentifierUnresolvable ErrorCode = "identifier-unresolvable"
	// ErrAnchorEncoding indicates a legacy anchor fragment is not valid
	// percent-encoded UTF-8.
	ErrAnchorEncoding ErrorCode = "anchor-encoding"
	// ErrDocumentParse indicates a document could not be parsed as JSON.
	ErrDocumentParse ErrorCode = "document-parse"
	// ErrLoaderScheme indicates no loader is registered for a URL scheme.
	ErrLoaderScheme ErrorCode = "loader-scheme"
)

// Resolution describes a schema resolution error with an error code and the
// JSON Pointer of the offending node, when one is known.
type Resolution struct {
	Code    string
	Message string
	Ptr     string
}

// Error formats the resolution error for display, including code, message,
// and pointer context.
func (r *Resolution) Error() string {
	if r == nil {
		return "resolution <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", r.Code, r.Message))
	if r.Ptr != "" {
		b.WriteString(fmt.Sprintf(" at %s", r.Ptr))
	}
	return b.String()
}

// NewResolution builds a Resolution with a code, message, and optional
// JSON Pointer.
func NewResolution(code ErrorCode, msg, ptr string) *Resolution {
	return &Resolution{Code: string(code), Message: msg, Ptr: ptr}
}

// NewResolutionf formats a message and builds a Resolution.
func NewResolutionf(code ErrorCode, ptr, format string, args ...any) *Resolution {
	return NewResolution(code, fmt.Sprintf(format, args...), ptr)
}

// AsResolution extracts a resolution error from an error returned by the
// resolution helpers.
func AsResolution(err error) (*Resolution, bool) {
	if err == nil {
		return nil, false
	}
	var r *Resolution
	if errors.As(err, &r) && r != nil {
		return r, true
	}
	return nil, false
}
