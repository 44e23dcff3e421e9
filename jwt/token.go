package jwt

import (
	"encoding/base64"
	"strings"

	"github.com/effective-security/xjwt/structval"
)

// Token is the decoded form of a compact serialization. All fields are
// populated by Parse. The signature is decoded but not verified, and the
// time claims are not compared against the clock; both are left to the
// caller.
type Token struct {
	// Raw is the exact input the token was parsed from.
	Raw string

	// Algorithm is the alg header value.
	Algorithm string
	// KeyID is the kid header value, empty when the header has none.
	KeyID string

	Issuer    string
	Subject   string
	Audiences []string
	IssuedAt  uint64
	NotBefore uint64
	ExpiresAt uint64
	ID        string

	// Signature is the decoded third segment.
	Signature []byte

	// Header and Payload keep the full decoded documents, so callers can
	// reach private claims the typed fields do not cover.
	Header  *structval.Value
	Payload *structval.Value

	hasIat bool
	hasNbf bool
	hasExp bool
}

// HasIssuedAt reports whether the payload carried an iat claim; IssuedAt is
// zero either way when it did not.
func (t *Token) HasIssuedAt() bool {
	return t.hasIat
}

// HasNotBefore reports whether the payload carried an nbf claim.
func (t *Token) HasNotBefore() bool {
	return t.hasNbf
}

// HasExpiresAt reports whether the payload carried an exp claim.
func (t *Token) HasExpiresAt() bool {
	return t.hasExp
}

// Claims returns a typed accessor over the decoded payload.
func (t *Token) Claims() structval.Getter {
	return structval.NewGetter(t.Payload)
}

// Clone returns a deep copy of the token; the header and payload documents
// share no state with the original.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	if t.Audiences != nil {
		c.Audiences = append([]string(nil), t.Audiences...)
	}
	if t.Signature != nil {
		c.Signature = append([]byte(nil), t.Signature...)
	}
	c.Header = t.Header.Clone()
	c.Payload = t.Payload.Clone()
	return &c
}

// DecodeSegment decodes one base64url segment, padded or not. The URL safe
// alphabet is required: '+' and '/' are rejected.
func DecodeSegment(seg string) ([]byte, error) {
	if strings.ContainsRune(seg, '=') {
		return base64.URLEncoding.DecodeString(seg)
	}
	return base64.RawURLEncoding.DecodeString(seg)
}

// EncodeSegment returns JWT specific base64url encoding with padding stripped
func EncodeSegment(seg []byte) string {
	return base64.RawURLEncoding.EncodeToString(seg)
}
