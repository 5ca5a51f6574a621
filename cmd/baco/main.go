package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/govalues/baco"
	"github.com/govalues/baco/internal/cli"
	"github.com/govalues/baco/internal/config"
	"github.com/govalues/baco/internal/logging"
)

// main is the entrypoint for the baco command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses the arguments, converts the number and prints the result.
func run(stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	logger, err := logging.New(cfg.Log, stdout, stderr)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	defer func() { _ = logger.Sync() }()

	width := opts.Bit
	if width == 0 {
		width = cfg.Bit
	}
	logger.Debug("converting",
		zap.String("number", opts.Number),
		zap.Stringer("from", opts.From),
		zap.Stringer("to", opts.To),
		zap.Int("width", width),
	)

	out, err := baco.ConvertWidth(opts.Number, opts.From, opts.To, width)
	if err != nil {
		logger.Debug("conversion failed", zap.Error(err))
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	logger.Debug("converted", zap.String("result", out))
	fmt.Fprintln(stdout, out)
	return nil
}
