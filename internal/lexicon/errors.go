package lexicon

import (
	"errors"
	"fmt"
)

// Input validation errors, returned before any request is made
var (
	ErrEmptyWord     = errors.New("word is empty")
	ErrMultipleWords = errors.New("input contains more than one word")
)

// Sentinels matched by errors.Is against a *LookupError of the same kind
var (
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")
)

// ErrorKind classifies a failed lookup
type ErrorKind int

const (
	NetworkError ErrorKind = iota // Transport failure, timeout or non-success status
	ParseError                    // Response body did not match the expected shape
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkError:
		return "network error"
	case ParseError:
		return "parse error"
	default:
		return "unknown error"
	}
}

// LookupError reports a lookup that reached, or tried to reach, the
// dictionary service and failed
type LookupError struct {
	Kind       ErrorKind
	Word       string
	StatusCode int // Non-zero when the service answered with a failure status
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %q: %s: %v", e.Word, e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNetwork) and errors.Is(err, ErrParse) match by kind
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == NetworkError
	case ErrParse:
		return e.Kind == ParseError
	}
	return false
}

// statusError is a non-success HTTP status other than 404
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.status)
}
