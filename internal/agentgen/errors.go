package agentgen

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindInvalidInput
	KindAuthentication
	KindTransport
	KindExtraction
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvalidInput:
		return "invalid_input"
	case KindAuthentication:
		return "authentication"
	case KindTransport:
		return "transport"
	case KindExtraction:
		return "extraction"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by the generation pipeline.
// Every failure leaving this package carries exactly one Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for use with errors.Is; matching is by Kind only.
var (
	ErrConfiguration  = &Error{Kind: KindConfiguration}
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrTransport      = &Error{Kind: KindTransport}
	ErrExtraction     = &Error{Kind: KindExtraction}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}
