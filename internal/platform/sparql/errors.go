package sparql

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphUnavailable matches both unreachable endpoints and timeouts.
	ErrGraphUnavailable = errors.New("graph endpoint unavailable")
	ErrGraphTimeout     = errors.New("graph endpoint timed out")
	ErrGraphQueryFailed = errors.New("graph query failed")
)

type Kind int

const (
	KindUnavailable Kind = iota + 1
	KindTimeout
	KindQueryFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindQueryFailed:
		return "query_failed"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := "sparql: " + e.Kind.String()
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrGraphUnavailable:
		return e.Kind == KindUnavailable || e.Kind == KindTimeout
	case ErrGraphTimeout:
		return e.Kind == KindTimeout
	case ErrGraphQueryFailed:
		return e.Kind == KindQueryFailed
	}
	return false
}

// IsTimeout reports whether err came from a graph round trip that ran out of time.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrGraphTimeout)
}

// KindOf returns the failure kind carried by err, or 0 when err is not a graph error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se != nil {
		return se.Kind
	}
	return 0
}
