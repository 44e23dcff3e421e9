package jwt_test

import (
	"testing"

	"github.com/effective-security/xjwt/jwt"
	jose "github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParserConfig(t *testing.T) {
	_, err := jwt.LoadParserConfig("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read file")

	_, err = jwt.LoadParserConfig("testdata/parser_corrupted.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable parse JSON")

	_, err = jwt.LoadParserConfig("testdata/parser_corrupted.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable parse YAML")

	cfg, err := jwt.LoadParserConfig("testdata/parser.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"RS256", "ES256"}, cfg.Algorithms)
	assert.Equal(t, 4096, cfg.MaxTokenSize)

	cfg, err = jwt.LoadParserConfig("testdata/parser.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"HS256", "HS384"}, cfg.Algorithms)
	assert.Equal(t, 2048, cfg.MaxTokenSize)
}

func TestParserConfig_Parser(t *testing.T) {
	cfg, err := jwt.LoadParserConfig("testdata/parser.yaml")
	require.NoError(t, err)

	p, err := cfg.Parser()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 4096, p.MaxTokenSize)
	assert.True(t, p.Algorithms[jose.RS256])
	assert.True(t, p.Algorithms[jose.ES256])
	assert.False(t, p.Algorithms[jose.HS256])

	tok, err := p.Parse(goodToken)
	require.NoError(t, err)
	assert.Equal(t, "RS256", tok.Algorithm)

	es, err := (&jwt.ParserConfig{Algorithms: []string{"ES384"}}).Parser()
	require.NoError(t, err)
	_, err = es.Parse(goodToken)
	assert.ErrorIs(t, err, jwt.StatusHeaderNotImplementedAlg)

	// an empty config keeps the parser defaults
	p, err = (&jwt.ParserConfig{}).Parser()
	require.NoError(t, err)
	assert.Nil(t, p.Algorithms)
	assert.Equal(t, 0, p.MaxTokenSize)

	// EdDSA is known and can be enabled explicitly
	ed, err := (&jwt.ParserConfig{Algorithms: []string{"EdDSA"}}).Parser()
	require.NoError(t, err)
	assert.True(t, ed.Algorithms[jose.EdDSA])
}

func TestParserConfig_Invalid(t *testing.T) {
	cfg, err := jwt.LoadParserConfig("testdata/parser_unknown_alg.yaml")
	require.NoError(t, err)
	_, err = cfg.Parser()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported algorithm: "NONE"`)

	_, err = (&jwt.ParserConfig{MaxTokenSize: -1}).Parser()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid max_token_size")
}
