package crypto

import (
	"errors"
	"fmt"

	"github.com/dchest/uniuri"
)

const (
	// Alphabet holds every character a generated password may contain.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	MinLength     = 4
	DefaultLength = 12
)

var ErrLengthTooShort = fmt.Errorf("password length must be at least %d characters", MinLength)

// newLenChars panics when crypto/rand cannot be read.
var newLenChars = uniuri.NewLenChars

// ValidationError reports a password request that cannot be satisfied.
type ValidationError struct {
	Length int
	Err    error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was caused by an invalid request.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Generate creates a random password of the given length. Every position is
// drawn independently and uniformly from Alphabet using crypto/rand.
func Generate(length int) (password string, err error) {
	if length < MinLength {
		return "", &ValidationError{Length: length, Err: ErrLengthTooShort}
	}

	defer func() {
		if r := recover(); r != nil {
			password, err = "", fmt.Errorf("reading random source: %v", r)
		}
	}()

	return newLenChars(length, []byte(Alphabet)), nil
}
