// Command lined applies single-letter editing commands to an in-memory line
// buffer, either read from stdin one per line or typed in a terminal view.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/iw2rmb/lined"
	"github.com/iw2rmb/lined/command"
	"github.com/iw2rmb/lined/internal/config"
	"github.com/iw2rmb/lined/internal/logging"
)

var errInterrupted = errors.New("interrupted")

type options struct {
	configPath string
	tui        bool
	strict     bool
	version    bool
	noColor    bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("lined", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	fs.BoolVar(&opts.tui, "tui", false, "Edit in the terminal instead of reading commands from stdin")
	fs.BoolVar(&opts.strict, "strict", false, "Check document invariants after every command")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colors in the terminal view")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCodeForError(err))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return withExitCode(err, 2)
	}

	if opts.version {
		_, err := fmt.Fprintf(stdout, "lined %s\n", lined.VersionTag())
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return withExitCode(err, 2)
	}
	if opts.strict {
		cfg.Session.Strict = true
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return withExitCode(err, 2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.tui {
		if opts.noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return runTUI(ctx, cfg, logger, stdout)
	}
	err = runBatch(ctx, cfg, logger, stdin, stdout)
	if errors.Is(err, context.Canceled) {
		return withExitCode(errInterrupted, 130)
	}
	return err
}

func runBatch(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	out := bufio.NewWriter(stdout)
	sess := command.NewSession(out, command.Options{
		Strict: cfg.Session.Strict,
		Logger: logger,
	})

	runErr := sess.Run(ctx, stdin)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("write output: %w", err)
	}
	logger.Debug("batch done",
		zap.Int("executed", sess.Executed()),
		zap.Int("lines", sess.Document().LineCount()),
		zap.Error(runErr),
	)
	return runErr
}
