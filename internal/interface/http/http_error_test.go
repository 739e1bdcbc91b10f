package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/sunside/pkg/errors"
)

func TestFromDomain(t *testing.T) {
	cause := errors.New("lookup table missing")

	bad := fromDomain(apperrors.Wrap(apperrors.CodeInvalidInput, `invalid airport codes: "QQQ"`, cause))
	require.Equal(t, http.StatusBadRequest, bad.Status)
	require.Equal(t, codeInvalidRequest, bad.Code)
	require.Equal(t, `invalid airport codes: "QQQ"`, bad.Message)
	require.ErrorIs(t, bad, cause)

	broken := fromDomain(apperrors.Wrap(apperrors.CodeInternal, "non-finite sun position", nil))
	require.Equal(t, http.StatusInternalServerError, broken.Status)
	require.Equal(t, codeInternal, broken.Code)
	require.Equal(t, internalMessage, broken.Message)
}

func TestAsHTTPError(t *testing.T) {
	require.Nil(t, asHTTPError(nil))

	limited := asHTTPError(rateLimited())
	require.Equal(t, http.StatusTooManyRequests, limited.Status)
	require.Equal(t, codeRateLimitExceeded, limited.Code)

	plain := asHTTPError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, plain.Status)
	require.Equal(t, internalMessage, plain.Message)
}
