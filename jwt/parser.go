package jwt

import (
	"math"
	"strings"
	"time"

	"github.com/effective-security/xjwt/metricskey"
	"github.com/effective-security/xjwt/structval"
	"github.com/effective-security/xlog"
	jose "github.com/go-jose/go-jose/v3"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "jwt")

// DefaultMaxTokenSize is the longest compact serialization Parse accepts
// when the TokenParser does not set its own limit.
const DefaultMaxTokenSize = 8192

// TokenParser config
type TokenParser struct {
	// Algorithms is the alg allow list; nil means DefaultAlgorithms.
	Algorithms map[jose.SignatureAlgorithm]bool
	// MaxTokenSize caps the input length; 0 means DefaultMaxTokenSize.
	MaxTokenSize int
}

// Parse decodes a compact serialization with default parser settings.
func Parse(token string) (*Token, error) {
	var p TokenParser
	return p.Parse(token)
}

// Parse decodes the three segments of a compact serialization and validates
// the registered header fields and claims. The error, when not nil, is
// always a Status; the token is nil on any failure.
func (p *TokenParser) Parse(token string) (*Token, error) {
	started := time.Now()
	t, st := p.parse(token)
	metricskey.PerfTokenParse.MeasureSince(started, st.String())
	if st != StatusOK {
		return nil, st
	}

	logger.KV(xlog.TRACE, "alg", t.Algorithm, "iss", t.Issuer)
	return t, nil
}

func (p *TokenParser) parse(token string) (*Token, Status) {
	maxSize := p.MaxTokenSize
	if maxSize <= 0 {
		maxSize = DefaultMaxTokenSize
	}
	// check the size before any decoding work
	if len(token) > maxSize {
		return nil, StatusBadFormat
	}

	parts, ok := splitToken(token)
	if !ok {
		return nil, StatusBadFormat
	}

	t := &Token{Raw: token}

	if st := p.parseHeader(t, parts[0]); st != StatusOK {
		return nil, st
	}
	if st := p.parsePayload(t, parts[1]); st != StatusOK {
		return nil, st
	}

	sig, err := DecodeSegment(parts[2])
	if err != nil {
		return nil, StatusSignatureParseErrorBadBase64
	}
	t.Signature = sig

	return t, StatusOK
}

// splitToken splits a token into exactly three segments around the dots.
func splitToken(token string) ([]string, bool) {
	header, rest, ok := strings.Cut(token, ".")
	if !ok {
		return nil, false
	}
	payload, sig, ok := strings.Cut(rest, ".")
	if !ok || strings.Contains(sig, ".") {
		return nil, false
	}
	return []string{header, payload, sig}, true
}

func (p *TokenParser) parseHeader(t *Token, seg string) Status {
	raw, err := DecodeSegment(seg)
	if err != nil {
		return StatusHeaderParseErrorBadBase64
	}
	doc, err := structval.Parse(raw)
	if err != nil || doc.Kind() != structval.KindObject {
		return StatusHeaderParseErrorBadJSON
	}
	t.Header = doc

	h := structval.NewGetter(doc)
	alg, res := h.GetString("alg")
	if res != structval.Found {
		return StatusHeaderBadAlg
	}
	algs := p.Algorithms
	if algs == nil {
		algs = defaultAlgorithms
	}
	if !algs[jose.SignatureAlgorithm(alg)] {
		return StatusHeaderNotImplementedAlg
	}
	t.Algorithm = alg

	kid, res := h.GetString("kid")
	switch res {
	case structval.Found:
		t.KeyID = kid
	case structval.WrongType:
		return StatusHeaderBadKid
	}
	return StatusOK
}

func (p *TokenParser) parsePayload(t *Token, seg string) Status {
	raw, err := DecodeSegment(seg)
	if err != nil {
		return StatusPayloadParseErrorBadBase64
	}
	doc, err := structval.Parse(raw)
	if err != nil || doc.Kind() != structval.KindObject {
		return StatusPayloadParseErrorBadJSON
	}
	t.Payload = doc

	c := structval.NewGetter(doc)

	var res structval.Result
	if t.Issuer, res = c.GetString("iss"); res == structval.WrongType {
		return StatusPayloadParseErrorIssNotString
	}
	if t.Subject, res = c.GetString("sub"); res == structval.WrongType {
		return StatusPayloadParseErrorSubNotString
	}

	var st Status
	if t.IssuedAt, t.hasIat, st = timeClaim(c, "iat",
		StatusPayloadParseErrorIatNotInteger, StatusPayloadParseErrorIatNotPositive); st != StatusOK {
		return st
	}
	if t.NotBefore, t.hasNbf, st = timeClaim(c, "nbf",
		StatusPayloadParseErrorNbfNotInteger, StatusPayloadParseErrorNbfNotPositive); st != StatusOK {
		return st
	}
	if t.ExpiresAt, t.hasExp, st = timeClaim(c, "exp",
		StatusPayloadParseErrorExpNotInteger, StatusPayloadParseErrorExpNotPositive); st != StatusOK {
		return st
	}

	if t.ID, res = c.GetString("jti"); res == structval.WrongType {
		return StatusPayloadParseErrorJtiNotString
	}

	switch auds, res := c.GetStringList("aud"); res {
	case structval.Found:
		t.Audiences = auds
	case structval.WrongType:
		return StatusPayloadParseErrorAudNotString
	}
	return StatusOK
}

// timeClaim reads a numeric date claim. An absent claim reports zero and no
// presence; a negative integer reports notPos, every other non unsigned
// value reports notInt.
func timeClaim(c structval.Getter, name string, notInt, notPos Status) (uint64, bool, Status) {
	u, res := c.GetUInt64(name)
	switch res {
	case structval.Missing:
		return 0, false, StatusOK
	case structval.Found:
		return u, true, StatusOK
	}
	if f, res := c.GetDouble(name); res == structval.Found && f < 0 && f == math.Trunc(f) {
		return 0, false, notPos
	}
	return 0, false, notInt
}
