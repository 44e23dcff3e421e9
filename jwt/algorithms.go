package jwt

import (
	jose "github.com/go-jose/go-jose/v3"
)

// defaultAlgorithms is the alg allow list used when a TokenParser does not
// set its own. EdDSA is recognized but must be enabled explicitly.
var defaultAlgorithms = map[jose.SignatureAlgorithm]bool{
	jose.ES256: true,
	jose.ES384: true,
	jose.ES512: true,
	jose.HS256: true,
	jose.HS384: true,
	jose.HS512: true,
	jose.RS256: true,
	jose.RS384: true,
	jose.RS512: true,
	jose.PS256: true,
	jose.PS384: true,
	jose.PS512: true,
}

// knownAlgorithms are the algorithm names a ParserConfig may enable.
var knownAlgorithms = map[jose.SignatureAlgorithm]bool{
	jose.EdDSA: true,
	jose.ES256: true,
	jose.ES384: true,
	jose.ES512: true,
	jose.HS256: true,
	jose.HS384: true,
	jose.HS512: true,
	jose.RS256: true,
	jose.RS384: true,
	jose.RS512: true,
	jose.PS256: true,
	jose.PS384: true,
	jose.PS512: true,
}

// DefaultAlgorithms returns a copy of the default alg allow list, which a
// caller may alter and hand to a TokenParser.
func DefaultAlgorithms() map[jose.SignatureAlgorithm]bool {
	out := make(map[jose.SignatureAlgorithm]bool, len(defaultAlgorithms))
	for alg := range defaultAlgorithms {
		out[alg] = true
	}
	return out
}
