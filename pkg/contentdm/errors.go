package contentdm

import "errors"

// Kind classifies a client failure.
type Kind string

const (
	// KindTransport covers connectivity problems, timeouts, and non-200 responses.
	KindTransport Kind = "transport"
	// KindDecode covers responses that cannot be parsed as the expected shape.
	KindDecode Kind = "decode"
)

// Error is the value returned across the client boundary for any failure.
// The client never panics and never hides a failure inside a payload.
type Error struct {
	Kind    Kind
	Op      string // the CONTENTdm function, e.g. "dmQuery"
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a client error of the transport kind.
func IsTransport(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindTransport
}

// IsDecode reports whether err is a client error of the decode kind.
func IsDecode(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindDecode
}
