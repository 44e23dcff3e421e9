// Package jwt decodes JSON Web Tokens in compact serialization form, as
// defined by RFC 7519, and validates their structure.
//
// The parser splits a token into its three segments, decodes base64url and
// JSON, and checks the types of the registered header fields and claims:
//   - alg must name an algorithm from a configurable allow list
//   - kid, iss, sub and jti must be strings when present
//   - iat, nbf and exp must be non negative integers when present
//   - aud must be a string or a list of strings
//
// Every failure maps to a single Status value, and the first failing step
// wins. The signature segment is decoded but never verified, and time
// claims are not compared against the current time; both are left to the
// caller. The full header and payload documents stay available on the
// parsed Token for private claims.
package jwt
