package apperr

import "errors"

// Sentinel errors for the service layer. Handlers match these with errors.Is
// to pick a response status; anything else is treated as an internal failure.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrBadPassword       = errors.New("wrong password")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("permission denied")
	ErrSelfShare         = errors.New("cannot share with yourself")
	ErrAlreadyShared     = errors.New("already shared with this user")
	ErrTooLarge          = errors.New("file exceeds size limit")
	ErrIO                = errors.New("storage failure")
)

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrAlreadyShared)
}
