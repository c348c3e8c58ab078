// Package auth implements the stateless credential check used to gate the
// report export. There are no sessions or tokens; verification is repeated
// on every protected call.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Credentials is a user/password pair.
type Credentials struct {
	User     string
	Password string
}

// Configured reports whether both secrets are set.
func (c Credentials) Configured() bool {
	return c.User != "" && c.Password != ""
}

// Verify compares a submitted pair against the configured pair in constant
// time. Unset configuration is a server fault, not an authentication failure.
func Verify(submitted, configured Credentials) error {
	if !configured.Configured() {
		return fmt.Errorf("%w: report credentials not set", httpx.ErrMisconfigured)
	}
	userOK := subtle.ConstantTimeCompare([]byte(submitted.User), []byte(configured.User))
	passOK := subtle.ConstantTimeCompare([]byte(submitted.Password), []byte(configured.Password))
	if userOK&passOK != 1 {
		return fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	return nil
}
