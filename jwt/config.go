package jwt

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	jose "github.com/go-jose/go-jose/v3"
	"gopkg.in/yaml.v3"
)

// ParserConfig describes TokenParser settings loadable from a file.
type ParserConfig struct {
	// Algorithms lists the accepted alg values; empty keeps the default set.
	Algorithms []string `json:"algorithms,omitempty" yaml:"algorithms,omitempty"`
	// MaxTokenSize caps the compact serialization length; 0 keeps
	// DefaultMaxTokenSize.
	MaxTokenSize int `json:"max_token_size,omitempty" yaml:"max_token_size,omitempty"`
}

// LoadParserConfig returns the configuration loaded from a file.
// JSON or YAML formats are supported, depending on the file extension.
func LoadParserConfig(file string) (*ParserConfig, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to read file")
	}

	var cfg ParserConfig
	if strings.HasSuffix(file, ".json") {
		err = json.Unmarshal(raw, &cfg)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable parse JSON: %s", file)
		}
	} else {
		err = yaml.Unmarshal(raw, &cfg)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable parse YAML: %s", file)
		}
	}
	return &cfg, nil
}

// Parser returns a TokenParser with the configured settings.
func (c *ParserConfig) Parser() (*TokenParser, error) {
	if c.MaxTokenSize < 0 {
		return nil, errors.Errorf("invalid max_token_size: %d", c.MaxTokenSize)
	}
	p := &TokenParser{
		MaxTokenSize: c.MaxTokenSize,
	}
	if len(c.Algorithms) > 0 {
		algs := make(map[jose.SignatureAlgorithm]bool, len(c.Algorithms))
		for _, name := range c.Algorithms {
			alg := jose.SignatureAlgorithm(name)
			if !knownAlgorithms[alg] {
				return nil, errors.Errorf("unsupported algorithm: %q", name)
			}
			algs[alg] = true
		}
		p.Algorithms = algs
	}
	return p, nil
}
