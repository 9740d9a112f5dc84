package keys

import "fmt"

// MinPasswordLength is the minimum number of bytes a password must have.
const MinPasswordLength = 8

// Validate rejects passwords shorter than MinPasswordLength.
// Length is counted in bytes, not runes.
func Validate(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: got %d characters, need at least %d", ErrPasswordTooShort, len(password), MinPasswordLength)
	}

	return nil
}
