package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/unkn0wn-root/b64"
	logslog "github.com/unkn0wn-root/b64/log/slog"
)

const (
	exitOK    = 0
	exitData  = 1
	exitUsage = 2
)

type CLI struct {
	Verbose   int    `short:"v" type:"counter" help:"Log verbosity (-v info, -vv debug)."`
	LogFormat string `enum:"text,json" default:"text" help:"Log format on stderr (text, json)."`
	Color     bool   `help:"Colorize text logs."`

	Encode EncodeCmd `cmd:"" help:"Encode FILE (or stdin) to base64."`
	Decode DecodeCmd `cmd:"" help:"Decode base64 from FILE (or stdin)."`
}

// AlphabetFlags select the codec shared by both commands.
type AlphabetFlags struct {
	URL      bool   `help:"Use the URL and filename safe alphabet."`
	Raw      bool   `help:"Omit padding."`
	Alphabet string `help:"Custom 64 symbol alphabet (overrides --url)."`
}

func (f AlphabetFlags) codec(strict bool) (*b64.Codec, error) {
	alphabet := b64.EncodeStd
	if f.URL {
		alphabet = b64.EncodeURL
	}
	if f.Alphabet != "" {
		alphabet = f.Alphabet
	}
	pad := b64.StdPadding
	if f.Raw {
		pad = b64.NoPadding
	}
	c, err := b64.New(alphabet, pad, strict)
	if err != nil {
		return nil, usageError{err}
	}
	return c, nil
}

// runtime carries the process streams and logger into command Run methods.
type runtime struct {
	stdin  io.Reader
	stdout io.Writer
	log    b64.Logger
}

// usageError marks failures caused by bad flags rather than bad data.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type exitCode int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("b64"),
		kong.Description("Encode and decode base64 with standard, URL or custom alphabets."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.DefaultEnvars("B64"),
	)
	if err != nil {
		fmt.Fprintf(stderr, "b64: %v\n", err)
		return exitUsage
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return exitUsage
	}

	logger := newLogger(stderr, cli.Verbose, cli.LogFormat, cli.Color)
	rt := &runtime{stdin: stdin, stdout: stdout, log: logslog.Logger{L: logger}}

	if err := kctx.Run(rt); err != nil {
		parser.Errorf("%s", err)
		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitData
	}
	return exitOK
}

func newLogger(w io.Writer, verbosity int, format string, color bool) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !color,
	}))
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}
