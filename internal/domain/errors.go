package domain

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Kind classifies a build failure
type Kind string

// Error kinds
const (
	KindConfig       Kind = "ConfigError"
	KindManifest     Kind = "ManifestError"
	KindParse        Kind = "ParseError"
	KindDataNotFound Kind = "DataNotFoundError"
	KindInvalidJSON  Kind = "InvalidJSONError"
	KindInvalidURL   Kind = "InvalidURLError"
	KindHTTPStatus   Kind = "HTTPStatusError"
	KindUnknown      Kind = "UnknownError"
	KindSassNotFound Kind = "SassNotFoundError"
	KindJsNotFound   Kind = "JsNotFoundError"
)

// Sentinel errors, matched by kind with errors.Is
var (
	// ErrConfig indicates an unsupported custom manifest path
	ErrConfig = &Error{Kind: KindConfig}

	// ErrManifest indicates an empty demo list, a duplicate name or an output collision
	ErrManifest = &Error{Kind: KindManifest}

	// ErrParse indicates a manifest that is not valid JSON
	ErrParse = &Error{Kind: KindParse}

	// ErrDataNotFound indicates a missing local demo data file
	ErrDataNotFound = &Error{Kind: KindDataNotFound}

	// ErrInvalidJSON indicates demo data that could not be decoded
	ErrInvalidJSON = &Error{Kind: KindInvalidJSON}

	// ErrInvalidURL indicates a malformed remote data URL
	ErrInvalidURL = &Error{Kind: KindInvalidURL}

	// ErrHTTPStatus indicates a non-2xx response for remote demo data
	ErrHTTPStatus = &Error{Kind: KindHTTPStatus}

	// ErrUnknown indicates an unclassified network failure
	ErrUnknown = &Error{Kind: KindUnknown}

	// ErrSassNotFound indicates a declared Sass source that does not exist
	ErrSassNotFound = &Error{Kind: KindSassNotFound}

	// ErrJsNotFound indicates a declared JS source that does not exist
	ErrJsNotFound = &Error{Kind: KindJsNotFound}
)

// Error is a classified build error.
//
// Errors caused by user configuration are concise: they carry no stack.
// Unknown errors record the stack at construction so they stay diagnosable.
type Error struct {
	Kind       Kind
	Subject    string
	StatusCode int
	Message    string
	Err        error
	stack      []byte
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Subject)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Subject == "" && t.Message == ""
}

// Stack returns the stack captured for unclassified errors, or nil
func (e *Error) Stack() []byte {
	return e.stack
}

// IsConcise reports whether err should be presented without a stack trace.
// Errors outside the taxonomy are never concise.
func IsConcise(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	return be.stack == nil
}

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// NewConfigError reports a manifest path other than the supported one
func NewConfigError(requested, supported string) *Error {
	return &Error{
		Kind:    KindConfig,
		Subject: requested,
		Message: fmt.Sprintf("custom demo config files are not supported, use %s", supported),
	}
}

// NewManifestError reports an invalid demo manifest
func NewManifestError(message string) *Error {
	return &Error{Kind: KindManifest, Message: message}
}

// NewParseError reports a manifest file that is not valid JSON
func NewParseError(file string, err error) *Error {
	return &Error{Kind: KindParse, Subject: file, Message: "failed to parse manifest", Err: err}
}

// NewDataNotFoundError reports a missing local demo data file
func NewDataNotFoundError(path string) *Error {
	return &Error{Kind: KindDataNotFound, Subject: path, Message: "demo data not found"}
}

// NewInvalidJSONError reports demo data that is not valid JSON
func NewInvalidJSONError(source string, err error) *Error {
	return &Error{Kind: KindInvalidJSON, Subject: source, Message: "demo data is not valid JSON", Err: err}
}

// NewInvalidURLError reports a malformed remote data URL
func NewInvalidURLError(rawURL string, err error) *Error {
	return &Error{Kind: KindInvalidURL, Subject: rawURL, Message: "invalid demo data URL", Err: err}
}

// NewHTTPStatusError reports a non-2xx response for remote demo data
func NewHTTPStatusError(rawURL string, statusCode int) *Error {
	return &Error{
		Kind:       KindHTTPStatus,
		Subject:    rawURL,
		StatusCode: statusCode,
		Message:    "demo data request failed",
	}
}

// NewUnknownError wraps an unclassified failure and records the current stack
func NewUnknownError(subject string, err error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Subject: subject,
		Message: "unexpected failure",
		Err:     err,
		stack:   debug.Stack(),
	}
}

// NewSassNotFoundError reports a declared Sass source that does not exist
func NewSassNotFoundError(path string) *Error {
	return &Error{Kind: KindSassNotFound, Subject: path, Message: "sass source not found"}
}

// NewJsNotFoundError reports a declared JS source that does not exist
func NewJsNotFoundError(path string) *Error {
	return &Error{Kind: KindJsNotFound, Subject: path, Message: "js source not found"}
}
