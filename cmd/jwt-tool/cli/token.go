package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/jwt"
	"github.com/effective-security/xjwt/structval"
	"github.com/effective-security/xjwt/x/print"
)

// ParseCmd specifies flags for Parse command
type ParseCmd struct {
	Token string `kong:"arg" required:"" help:"compact token, or \"-\" to read from stdin"`
	JSON  bool   `help:"print the decoded documents as JSON"`
}

// Run the command
func (a *ParseCmd) Run(ctx *Cli) error {
	raw, err := ctx.TokenArg(a.Token)
	if err != nil {
		return err
	}

	t, err := ctx.Parser().Parse(raw)
	if err != nil {
		return errors.WithMessage(err, "unable to parse token")
	}

	if a.JSON {
		ctx.WriteJSON(decodedToken{
			Header:  t.Header,
			Payload: t.Payload,
		})
		return nil
	}

	print.Token(ctx.Writer(), t)

	return nil
}

type decodedToken struct {
	Header  *structval.Value `json:"header"`
	Payload *structval.Value `json:"payload"`
}

// HeaderCmd specifies flags for Header command
type HeaderCmd struct {
	Token string `kong:"arg" required:"" help:"compact token, or \"-\" to read from stdin"`
}

// Run the command
func (a *HeaderCmd) Run(ctx *Cli) error {
	raw, err := ctx.TokenArg(a.Token)
	if err != nil {
		return err
	}

	doc, err := decodeSegmentJSON(raw, 0)
	if err != nil {
		return err
	}
	ctx.WriteJSON(doc)

	return nil
}

// ClaimsCmd specifies flags for Claims command
type ClaimsCmd struct {
	Token string `kong:"arg" required:"" help:"compact token, or \"-\" to read from stdin"`
}

// Run the command
func (a *ClaimsCmd) Run(ctx *Cli) error {
	raw, err := ctx.TokenArg(a.Token)
	if err != nil {
		return err
	}

	doc, err := decodeSegmentJSON(raw, 1)
	if err != nil {
		return err
	}
	ctx.WriteJSON(doc)

	return nil
}

// decodeSegmentJSON decodes one segment of the compact serialization as a
// JSON document, without validating the token.
func decodeSegmentJSON(token string, idx int) (*structval.Value, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.WithStack(jwt.StatusBadFormat)
	}
	raw, err := jwt.DecodeSegment(parts[idx])
	if err != nil {
		return nil, errors.WithMessage(err, "invalid segment encoding")
	}
	doc, err := structval.Parse(raw)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid segment document")
	}
	return doc, nil
}

// GetCmd specifies flags for Get command
type GetCmd struct {
	Token string `kong:"arg" required:"" help:"compact token, or \"-\" to read from stdin"`
	Path  string `kong:"arg" required:"" help:"dot separated claim path, for example user.email"`
}

// Run the command
func (a *GetCmd) Run(ctx *Cli) error {
	raw, err := ctx.TokenArg(a.Token)
	if err != nil {
		return err
	}

	t, err := ctx.Parser().Parse(raw)
	if err != nil {
		return errors.WithMessage(err, "unable to parse token")
	}

	g := t.Claims()
	parts := strings.Split(a.Path, ".")
	for _, name := range parts[:len(parts)-1] {
		next, res := g.GetStruct(name)
		if res != structval.Found {
			return errors.Errorf("claim %q: %s", name, res)
		}
		g = next
	}

	name := parts[len(parts)-1]
	v, res := g.GetValue(name)
	if res != structval.Found {
		return errors.Errorf("claim %q: %s", name, res)
	}
	ctx.WriteJSON(v)

	return nil
}
