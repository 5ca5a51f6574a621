package cli

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/govalues/baco"
	"github.com/govalues/baco/internal/alias"
)

// Version is printed by --version.
const Version = "BACO Base Converter 2.2"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options are the parsed command-line options.
type Options struct {
	From       baco.Encoding
	To         baco.Encoding
	Bit        int    // width hint, 0 if not given
	LogLevel   string // overrides the configured level if not empty
	ConfigPath string
	Number     string
}

// encodingValue is a kingpin.Value that resolves an encoding name.
type encodingValue struct {
	e    *baco.Encoding
	name string
}

func (v *encodingValue) Set(name string) error {
	e, err := alias.Resolve(name)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid option", name)
	}
	*v.e = e
	v.name = name
	return nil
}

func (v *encodingValue) String() string {
	return v.name
}

// Parse processes command-line arguments. It returns the options,
// a boolean indicating if the program should exit cleanly (after --help or
// --version), or an ExitError.
// Help and version go to stdout, parse errors are returned.
func Parse(args []string, stdout io.Writer) (*Options, bool, error) {
	opts := &Options{}
	exited := false

	app := kingpin.New("baco", help())
	app.UsageWriter(stdout)
	app.ErrorWriter(io.Discard)
	app.Terminate(func(int) { exited = true })
	app.HelpFlag.Short('h')
	app.Version(Version)
	app.VersionFlag.Short('v')

	app.Flag("from", "Source encoding.").Short('f').PlaceHolder("CODIFY").Required().SetValue(&encodingValue{e: &opts.From})
	app.Flag("to", "Destination encoding.").Short('t').PlaceHolder("CODIFY").Required().SetValue(&encodingValue{e: &opts.To})
	app.Flag("bit", "Number of bits or digits of the result.").Short('b').PlaceHolder("N").IntVar(&opts.Bit)
	app.Flag("log-level", "Logging level: debug, info, warn, error.").StringVar(&opts.LogLevel)
	app.Flag("config", "Path to a YAML configuration file.").StringVar(&opts.ConfigPath)
	app.Arg("number", "The number to convert. To enter a negative number type: -- <NUMBER>.").Required().StringVar(&opts.Number)

	_, err := app.Parse(args)
	if exited {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	if opts.Bit < 0 {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("invalid bit: %d", opts.Bit)}
	}
	return opts, false, nil
}

// help renders the application help: the codifies and a few examples.
func help() string {
	var sb strings.Builder
	sb.WriteString("Radix and numerical codes converter.\n\nCodifies:\n\n")
	fmt.Fprintf(&sb, "  %-8s %s\n", "BASEX", "Generic Base, X from 1 to 36")
	for _, c := range alias.Codifies() {
		fmt.Fprintf(&sb, "  %-8s %v\n", c.Names[0], c.Encoding)
	}
	sb.WriteString("\nExamples:\n\n")
	sb.WriteString("  baco -f dec -t bin 18.05          It converts from base 10 to base 2\n")
	sb.WriteString("  baco -f bin -t base15 1010011010  It converts from base 2 to base 15\n")
	sb.WriteString("  baco -f dec -t co2 -- -5          It converts a negative number\n")
	return sb.String()
}
