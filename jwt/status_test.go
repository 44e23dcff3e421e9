package jwt_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Error(t *testing.T) {
	assert.EqualError(t, jwt.StatusBadFormat,
		"jwt: token does not have the compact serialization format")
	assert.EqualError(t, jwt.StatusHeaderNotImplementedAlg,
		"jwt: header alg is not supported")
	assert.EqualError(t, jwt.StatusPayloadParseErrorIatNotPositive,
		"jwt: claim iat is a negative integer")
	assert.EqualError(t, jwt.StatusSignatureParseErrorBadBase64,
		"jwt: signature is not valid base64url")

	assert.Equal(t, "OK", jwt.StatusOK.String())
	assert.Equal(t, "BadFormat", jwt.StatusBadFormat.String())
	assert.Equal(t, "HeaderBadKid", jwt.StatusHeaderBadKid.String())
	assert.Equal(t, "PayloadParseErrorAudNotString", jwt.StatusPayloadParseErrorAudNotString.String())

	unknown := jwt.Status(9999)
	assert.Equal(t, "Status(9999)", unknown.String())
	assert.Contains(t, unknown.Error(), "unknown status")
}

func TestStatus_Matching(t *testing.T) {
	_, err := jwt.Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.StatusBadFormat)

	var st jwt.Status
	require.True(t, errors.As(err, &st))
	assert.Equal(t, jwt.StatusBadFormat, st)

	// statuses survive wrapping
	wrapped := errors.WithMessage(err, "parse failed")
	assert.ErrorIs(t, wrapped, jwt.StatusBadFormat)

	st = jwt.StatusOK
	require.True(t, errors.As(wrapped, &st))
	assert.Equal(t, jwt.StatusBadFormat, st)
}
