package errorx

import "fmt"

type Code int

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	AlreadyExists    Code = 100005
	Internal         Code = 100006
	Unavailable      Code = 100007
	NotImplemented   Code = 100008
	Unauthenticated  Code = 100009

	// Ledger codes
	InsufficientBalance Code = 200001

	// Badge codes
	UnknownBadge Code = 300001
)

var Unknown = Error{Code: 100000, Message: "Request failed"}

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}
