package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/platform/httpx"
)

func TestVerify(t *testing.T) {
	configured := Credentials{User: "ops", Password: "s3cret"}

	require.NoError(t, Verify(Credentials{User: "ops", Password: "s3cret"}, configured))

	err := Verify(Credentials{User: "ops", Password: "wrong"}, configured)
	require.ErrorIs(t, err, httpx.ErrUnauthorized)

	err = Verify(Credentials{User: "someone", Password: "s3cret"}, configured)
	require.ErrorIs(t, err, httpx.ErrUnauthorized)

	err = Verify(Credentials{}, configured)
	require.ErrorIs(t, err, httpx.ErrUnauthorized)
}

func TestVerifyUnconfigured(t *testing.T) {
	err := Verify(Credentials{User: "ops", Password: "s3cret"}, Credentials{})
	require.ErrorIs(t, err, httpx.ErrMisconfigured)

	err = Verify(Credentials{User: "ops", Password: "s3cret"}, Credentials{User: "ops"})
	require.ErrorIs(t, err, httpx.ErrMisconfigured)
}
