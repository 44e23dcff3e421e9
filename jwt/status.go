package jwt

import "strconv"

// Status is the detailed outcome of decoding a token. Every failure Parse
// can produce maps to exactly one Status; it satisfies the error interface
// so callers can match it with errors.Is or errors.As.
type Status uint32

// Parse outcomes.
const (
	// StatusOK means the token decoded and validated. It is never returned
	// as an error.
	StatusOK Status = iota

	// StatusBadFormat means the input is empty, longer than the size limit,
	// or is not three dot separated segments.
	StatusBadFormat

	// StatusHeaderParseErrorBadBase64 means the header segment is not valid
	// base64url.
	StatusHeaderParseErrorBadBase64
	// StatusHeaderParseErrorBadJSON means the decoded header is not a JSON
	// object.
	StatusHeaderParseErrorBadJSON
	// StatusHeaderBadAlg means the alg header is absent or not a string.
	StatusHeaderBadAlg
	// StatusHeaderNotImplementedAlg means the alg header names an algorithm
	// outside the accepted set.
	StatusHeaderNotImplementedAlg
	// StatusHeaderBadKid means the kid header is present but not a string.
	StatusHeaderBadKid

	// StatusPayloadParseErrorBadBase64 means the payload segment is not
	// valid base64url.
	StatusPayloadParseErrorBadBase64
	// StatusPayloadParseErrorBadJSON means the decoded payload is not a
	// JSON object.
	StatusPayloadParseErrorBadJSON
	// StatusPayloadParseErrorIssNotString means the iss claim is not a
	// string.
	StatusPayloadParseErrorIssNotString
	// StatusPayloadParseErrorSubNotString means the sub claim is not a
	// string.
	StatusPayloadParseErrorSubNotString
	// StatusPayloadParseErrorIatNotInteger means the iat claim is not an
	// integer.
	StatusPayloadParseErrorIatNotInteger
	// StatusPayloadParseErrorIatNotPositive means the iat claim is a
	// negative integer.
	StatusPayloadParseErrorIatNotPositive
	// StatusPayloadParseErrorNbfNotInteger means the nbf claim is not an
	// integer.
	StatusPayloadParseErrorNbfNotInteger
	// StatusPayloadParseErrorNbfNotPositive means the nbf claim is a
	// negative integer.
	StatusPayloadParseErrorNbfNotPositive
	// StatusPayloadParseErrorExpNotInteger means the exp claim is not an
	// integer.
	StatusPayloadParseErrorExpNotInteger
	// StatusPayloadParseErrorExpNotPositive means the exp claim is a
	// negative integer.
	StatusPayloadParseErrorExpNotPositive
	// StatusPayloadParseErrorJtiNotString means the jti claim is not a
	// string.
	StatusPayloadParseErrorJtiNotString
	// StatusPayloadParseErrorAudNotString means the aud claim is neither a
	// string nor a list of strings.
	StatusPayloadParseErrorAudNotString

	// StatusSignatureParseErrorBadBase64 means the signature segment is not
	// valid base64url.
	StatusSignatureParseErrorBadBase64
)

var statusNames = map[Status]string{
	StatusOK:                              "OK",
	StatusBadFormat:                       "BadFormat",
	StatusHeaderParseErrorBadBase64:       "HeaderParseErrorBadBase64",
	StatusHeaderParseErrorBadJSON:         "HeaderParseErrorBadJSON",
	StatusHeaderBadAlg:                    "HeaderBadAlg",
	StatusHeaderNotImplementedAlg:         "HeaderNotImplementedAlg",
	StatusHeaderBadKid:                    "HeaderBadKid",
	StatusPayloadParseErrorBadBase64:      "PayloadParseErrorBadBase64",
	StatusPayloadParseErrorBadJSON:        "PayloadParseErrorBadJSON",
	StatusPayloadParseErrorIssNotString:   "PayloadParseErrorIssNotString",
	StatusPayloadParseErrorSubNotString:   "PayloadParseErrorSubNotString",
	StatusPayloadParseErrorIatNotInteger:  "PayloadParseErrorIatNotInteger",
	StatusPayloadParseErrorIatNotPositive: "PayloadParseErrorIatNotPositive",
	StatusPayloadParseErrorNbfNotInteger:  "PayloadParseErrorNbfNotInteger",
	StatusPayloadParseErrorNbfNotPositive: "PayloadParseErrorNbfNotPositive",
	StatusPayloadParseErrorExpNotInteger:  "PayloadParseErrorExpNotInteger",
	StatusPayloadParseErrorExpNotPositive: "PayloadParseErrorExpNotPositive",
	StatusPayloadParseErrorJtiNotString:   "PayloadParseErrorJtiNotString",
	StatusPayloadParseErrorAudNotString:   "PayloadParseErrorAudNotString",
	StatusSignatureParseErrorBadBase64:    "SignatureParseErrorBadBase64",
}

var statusTexts = map[Status]string{
	StatusOK:                              "OK",
	StatusBadFormat:                       "token does not have the compact serialization format",
	StatusHeaderParseErrorBadBase64:       "header is not valid base64url",
	StatusHeaderParseErrorBadJSON:         "header is not a valid JSON object",
	StatusHeaderBadAlg:                    "header alg is absent or not a string",
	StatusHeaderNotImplementedAlg:         "header alg is not supported",
	StatusHeaderBadKid:                    "header kid is not a string",
	StatusPayloadParseErrorBadBase64:      "payload is not valid base64url",
	StatusPayloadParseErrorBadJSON:        "payload is not a valid JSON object",
	StatusPayloadParseErrorIssNotString:   "claim iss is not a string",
	StatusPayloadParseErrorSubNotString:   "claim sub is not a string",
	StatusPayloadParseErrorIatNotInteger:  "claim iat is not an integer",
	StatusPayloadParseErrorIatNotPositive: "claim iat is a negative integer",
	StatusPayloadParseErrorNbfNotInteger:  "claim nbf is not an integer",
	StatusPayloadParseErrorNbfNotPositive: "claim nbf is a negative integer",
	StatusPayloadParseErrorExpNotInteger:  "claim exp is not an integer",
	StatusPayloadParseErrorExpNotPositive: "claim exp is a negative integer",
	StatusPayloadParseErrorJtiNotString:   "claim jti is not a string",
	StatusPayloadParseErrorAudNotString:   "claim aud is not a string or list of strings",
	StatusSignatureParseErrorBadBase64:    "signature is not valid base64url",
}

// String returns the short status name, stable for use in metrics tags.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.FormatUint(uint64(s), 10) + ")"
}

// Error returns the status description.
func (s Status) Error() string {
	if text, ok := statusTexts[s]; ok {
		return "jwt: " + text
	}
	return "jwt: unknown status " + strconv.FormatUint(uint64(s), 10)
}
