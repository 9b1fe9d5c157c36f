package google

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCredentials is the sentinel wrapped by every AuthError.
var ErrNoCredentials = errors.New("no usable Google credentials found")

// AuthError reports that the whole credential-resolution chain was
// exhausted without producing a usable credential for the requested scopes.
type AuthError struct {
	Scopes []string
	Err    error
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("authentication failed for scopes [%s]", strings.Join(e.Scopes, ", "))
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNoCredentials
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
