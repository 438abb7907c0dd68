package constant

import "errors"

// Domain error kinds. Services wrap these with context via fmt.Errorf("%w: ...")
// and the HTTP error middleware maps them to status codes.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid request")
)
