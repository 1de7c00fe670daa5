package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ariaid/internal/config"
	"github.com/vango-dev/ariaid/internal/errors"
	"github.com/vango-dev/ariaid/pkg/ids"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by all subcommands once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	trace      bool

	cfg         *config.Config
	logger      *slog.Logger
	stopTracing func(context.Context) error
	workDir     func() (string, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{workDir: os.Getwd}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if a.stopTracing != nil {
		if serr := a.stopTracing(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}
	if err != nil {
		fmt.Fprint(stderr, cliError(err).Format())
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ariaid",
		Short: "Deterministic, hydration-safe element IDs and ARIA wiring",
		Long: `ariaid hands out element IDs that are identical on the server and
the client, and wires them into ARIA attributes.

Commands:
  validate   Check IDs for random or time-derived segments
  audit      Audit rendered HTML for duplicate or dangling IDs
  generate   Print the IDs a component would receive
  serve      Serve the demo page with metrics and tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file or directory (default: ./ariaid.json or ./ariaid.yaml if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	flags.BoolVar(&a.trace, "trace", false, "Export OpenTelemetry spans to stderr")

	rootCmd.AddCommand(
		a.validateCmd(),
		a.auditCmd(),
		a.generateCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides and installs the logger
// and tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)

	if a.trace {
		stop, err := setupTracing(cmd.ErrOrStderr(), version)
		if err != nil {
			return err
		}
		a.stopTracing = stop
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		info, err := os.Stat(a.configPath)
		if err != nil {
			return nil, errors.New("E141").
				WithFile(a.configPath).
				Wrap(err)
		}
		if info.IsDir() {
			return config.Load(a.configPath)
		}
		return config.LoadFile(a.configPath)
	}

	dir, err := a.workDir()
	if err != nil {
		return config.New(), nil
	}
	cfg, err := config.Load(dir)
	if err != nil {
		var ae *errors.AriaError
		if stderrors.As(err, &ae) && ae.Code == "E141" {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// allocator returns a fresh allocator built from the loaded configuration.
func (a *app) allocator(opts ...ids.Option) *ids.Allocator {
	opts = append([]ids.Option{
		ids.WithConfig(a.cfg.IDConfig()),
		ids.WithLogger(a.logger),
	}, opts...)
	return ids.New(opts...)
}

// cliError maps any error to a coded AriaError for display.
func cliError(err error) *errors.AriaError {
	switch {
	case stderrors.Is(err, ids.ErrEmptyComponent):
		return errors.New("E001").Wrap(err).
			WithSuggestion("Pass a component name with at least one letter or digit")
	case stderrors.Is(err, ids.ErrEmptyPurpose):
		return errors.New("E002").Wrap(err).
			WithSuggestion("Pass a non-empty field or element name")
	}
	return errors.FromError(err, "E150")
}
