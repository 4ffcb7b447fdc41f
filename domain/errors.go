package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrUnsupportedNetwork will throw if no rpc is configured for the selected network
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// request error
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidAddress = errors.New("Invalid address")

	// chain state error
	ErrResolverNotFound = errors.New("resolver not found")
	ErrNoAccount        = errors.New("no signing account")

	// auth error
	ErrNoJwtSecret  = errors.New("jwt secret not configured")
	ErrInvalidToken = errors.New("invalid token")
)

// ErrKind is the stable, machine readable tag of an Error.
type ErrKind string

const (
	ErrKindInvalidName      ErrKind = "InvalidName"
	ErrKindInvalidAddress   ErrKind = "InvalidAddress"
	ErrKindResolverNotFound ErrKind = "ResolverNotFound"
	ErrKindNoAccount        ErrKind = "NoAccount"

	// one general kind per operation, for anything not tagged more precisely
	ErrKindGetTextRecord          ErrKind = "GetTextRecord"
	ErrKindSetTextRecord          ErrKind = "SetTextRecord"
	ErrKindSetAddressRecord       ErrKind = "SetAddressRecord"
	ErrKindGetRecentRegistrations ErrKind = "GetRecentRegistrations"
	ErrKindResolve                ErrKind = "Resolve"
	ErrKindReverseResolve         ErrKind = "ReverseResolve"
)

// Error is the single error value returned by every ens operation.
// Msg says what was being attempted, Err is the original failure.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func NewError(kind ErrKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrKindOf returns the kind of the outermost Error in err's chain, "" if none.
func ErrKindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsErrKind(err error, kind ErrKind) bool {
	return ErrKindOf(err) == kind
}
