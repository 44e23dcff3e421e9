package cli

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/ctl"
	"github.com/effective-security/xjwt/jwt"
	"github.com/effective-security/xjwt/x/print"
	"github.com/effective-security/xlog"
	"golang.org/x/net/context"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "cli")

// Cli provides CLI context to run commands
type Cli struct {
	Version  ctl.VersionFlag `name:"version" help:"Print version information and quit" hidden:""`
	Cfg      string          `help:"Location of parser config file" type:"path"`
	Alg      []string        `help:"Override the accepted algorithms"`
	Debug    bool            `short:"D" help:"Enable debug mode"`
	LogLevel string          `short:"l" help:"Set the logging level (debug|info|warn|error)" default:"error"`

	// Stdin is the source to read from, typically set to os.Stdin
	stdin io.Reader
	// Output is the destination for all output from the command, typically set to os.Stdout
	output io.Writer
	// ErrOutput is the destinaton for errors.
	// If not set, errors will be written to os.StdError
	errOutput io.Writer

	ctx    context.Context
	parser *jwt.TokenParser
}

// Context for requests
func (c *Cli) Context() context.Context {
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	return c.ctx
}

// Reader is the source to read from, typically set to os.Stdin
func (c *Cli) Reader() io.Reader {
	if c.stdin != nil {
		return c.stdin
	}
	return os.Stdin
}

// WithReader allows to specify a custom reader
func (c *Cli) WithReader(reader io.Reader) *Cli {
	c.stdin = reader
	return c
}

// Writer returns a writer for control output
func (c *Cli) Writer() io.Writer {
	if c.output != nil {
		return c.output
	}
	return os.Stdout
}

// WithWriter allows to specify a custom writer
func (c *Cli) WithWriter(out io.Writer) *Cli {
	c.output = out
	return c
}

// ErrWriter returns a writer for control output
func (c *Cli) ErrWriter() io.Writer {
	if c.errOutput != nil {
		return c.errOutput
	}
	return os.Stderr
}

// WithErrWriter allows to specify a custom error writer
func (c *Cli) WithErrWriter(out io.Writer) *Cli {
	c.errOutput = out
	return c
}

// AfterApply hook to set the logging level
func (c *Cli) AfterApply(app *kong.Kong, vars kong.Vars) error {
	if c.Debug {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		val := strings.TrimLeft(c.LogLevel, "=")
		l, err := xlog.ParseLevel(strings.ToUpper(val))
		if err != nil {
			return errors.WithStack(err)
		}
		xlog.SetGlobalLogLevel(l)
	}

	return nil
}

// WriteJSON prints response to out
func (c *Cli) WriteJSON(value interface{}) {
	print.JSON(c.Writer(), value)
}

// TokenArg returns the token from the command argument,
// reading it from stdin when the argument is "-"
func (c *Cli) TokenArg(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("empty token argument")
	}
	if arg == "-" {
		b, err := io.ReadAll(c.Reader())
		if err != nil {
			return "", errors.WithStack(err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return arg, nil
}

// Parser returns the token parser, configured from the --cfg file and the
// --alg overrides when provided
func (c *Cli) Parser() *jwt.TokenParser {
	if c.parser != nil {
		return c.parser
	}

	cfg := &jwt.ParserConfig{}
	if c.Cfg != "" {
		var err error
		cfg, err = jwt.LoadParserConfig(c.Cfg)
		if err != nil {
			logger.Panicf("unable to load parser config: [%v]", err)
		}
	}
	if len(c.Alg) > 0 {
		cfg.Algorithms = c.Alg
	}

	p, err := cfg.Parser()
	if err != nil {
		logger.Panicf("unable to create parser: [%v]", err)
	}
	c.parser = p

	return c.parser
}
