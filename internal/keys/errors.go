package keys

import "errors"

// ErrPasswordTooShort is returned when a password has fewer than MinPasswordLength bytes.
var ErrPasswordTooShort = errors.New("password is too short")
