package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/genpass/genpass-go/internal/clipboard"
	"github.com/genpass/genpass-go/internal/config"
	"github.com/genpass/genpass-go/internal/model"
	"github.com/genpass/genpass-go/internal/symbols"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Command selects what the binary does.
type Command int

const (
	CommandGenerate Command = iota
	CommandServe
	CommandToken
	CommandHold
)

// Invocation is the parsed command line.
type Invocation struct {
	Command   Command
	Options   model.Options
	LogFormat string

	Addr    string        // serve
	Subject string        // token
	TTL     time.Duration // token
}

// stringList collects a repeatable string flag in the order given.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Parse processes command-line arguments. It returns the parsed invocation,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from defaults are used where no flag is given.
func Parse(args []string, output io.Writer, defaults config.Config) (*Invocation, bool, error) {
	if len(args) > 0 {
		switch args[0] {
		case "serve":
			return parseServe(args[1:], output, defaults)
		case "token":
			return parseToken(args[1:], output, defaults)
		case clipboard.HoldCommand:
			return &Invocation{Command: CommandHold}, false, nil
		}
	}
	return parseGenerate(args, output, defaults)
}

func parseGenerate(args []string, output io.Writer, defaults config.Config) (*Invocation, bool, error) {
	fs := flag.NewFlagSet("genpass", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, `
genpass - generate a random password.

Usage:
  genpass [options] [LENGTH]
  genpass serve [options]
  genpass token -subject NAME [-ttl DURATION]

Arguments:
  LENGTH
    Length of the password in unicode scalar values (default %d).

Options:
`, defaults.Length)
		fs.PrintDefaults()
	}

	noLatinUpper := fs.Bool("no-latin-upper", false, "Turn off latin uppercase symbols.")
	noLatinLower := fs.Bool("no-latin-lower", false, "Turn off latin lowercase symbols.")
	noLatin := fs.Bool("no-latin", false, "Turn off all latin symbols.")
	noDigits := fs.Bool("no-digits", false, "Turn off digits.")
	noSpecial := fs.Bool("no-special", false, "Turn off special symbols.")

	var allow, deny stringList
	fs.Var(&allow, "allow", "Allow additional symbols. Repeat to allow more sets.")
	fs.Var(&allow, "a", "Allow additional symbols (shorthand).")
	fs.Var(&deny, "deny", "Deny symbols. Repeat to deny more sets. Takes precedence over allow.")
	fs.Var(&deny, "d", "Deny symbols (shorthand).")

	var verbose, copyFlag bool
	fs.BoolVar(&verbose, "verbose", false, "Be verbose.")
	fs.BoolVar(&verbose, "v", false, "Be verbose (shorthand).")
	fs.BoolVar(&copyFlag, "copy", false, "Copy the password to the clipboard instead of printing it.")
	fs.BoolVar(&copyFlag, "c", false, "Copy to the clipboard (shorthand).")
	logFormat := fs.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	positional, exit, err := parseInterspersed(fs, args)
	if err != nil || exit {
		return nil, exit, err
	}

	length := defaults.Length
	switch len(positional) {
	case 0:
	case 1:
		n, err := strconv.Atoi(positional[0])
		if err != nil || n < 1 {
			return nil, false, usageError("invalid length %q: must be a positive integer", positional[0])
		}
		length = n
	default:
		return nil, false, usageError("unexpected arguments: %s", strings.Join(positional[1:], " "))
	}
	if length < 1 {
		return nil, false, usageError("invalid length %d: must be a positive integer", length)
	}

	if err := checkLogFormat(*logFormat); err != nil {
		return nil, false, err
	}

	var disabled []string
	if *noLatin || *noLatinUpper {
		disabled = append(disabled, symbols.LatinUpper)
	}
	if *noLatin || *noLatinLower {
		disabled = append(disabled, symbols.LatinLower)
	}
	if *noDigits {
		disabled = append(disabled, symbols.Digits)
	}
	if *noSpecial {
		disabled = append(disabled, symbols.Special)
	}

	return &Invocation{
		Command: CommandGenerate,
		Options: model.Options{
			Disabled: disabled,
			Allow:    allow,
			Deny:     deny,
			Length:   length,
			Copy:     copyFlag,
			Verbose:  verbose,
		},
		LogFormat: *logFormat,
	}, false, nil
}

func parseServe(args []string, output io.Writer, defaults config.Config) (*Invocation, bool, error) {
	fs := flag.NewFlagSet("genpass serve", flag.ContinueOnError)
	fs.SetOutput(output)

	addr := fs.String("addr", defaults.Addr, "Address to listen on.")
	verbose := fs.Bool("verbose", false, "Log alphabet construction for every request.")
	logFormat := fs.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := checkLogFormat(*logFormat); err != nil {
		return nil, false, err
	}

	return &Invocation{
		Command:   CommandServe,
		Options:   model.Options{Verbose: *verbose},
		LogFormat: *logFormat,
		Addr:      *addr,
	}, false, nil
}

func parseToken(args []string, output io.Writer, defaults config.Config) (*Invocation, bool, error) {
	fs := flag.NewFlagSet("genpass token", flag.ContinueOnError)
	fs.SetOutput(output)

	subject := fs.String("subject", "", "Client name the token is issued to.")
	ttl := fs.Duration("ttl", defaults.TokenExpiry, "Token lifetime.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if *subject == "" {
		return nil, false, usageError("-subject is required")
	}
	if *ttl <= 0 {
		return nil, false, usageError("-ttl must be positive")
	}

	return &Invocation{
		Command:   CommandToken,
		LogFormat: defaults.LogFormat,
		Subject:   *subject,
		TTL:       *ttl,
	}, false, nil
}

// parseInterspersed lets positional arguments appear between flags, so
// both "genpass -c 32" and "genpass 32 -c" work.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, bool, error) {
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, usageError("%s", err.Error())
		}
		rest = fs.Args()
		if len(rest) == 0 {
			return positional, false, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

func checkLogFormat(format string) error {
	if format != "text" && format != "json" {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}
	return nil
}
