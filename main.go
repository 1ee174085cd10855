package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/birdadapter/internal/analyzer"
	"github.com/olehluchkiv/birdadapter/internal/diagram"
	"github.com/olehluchkiv/birdadapter/internal/enricher"
	"github.com/olehluchkiv/birdadapter/internal/logging"
	"github.com/olehluchkiv/birdadapter/internal/resolver"
	"github.com/olehluchkiv/birdadapter/internal/scenario"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().ExecuteContext(context.Background())
	// cobra skips post-run hooks for failed commands, so close here.
	a.close()
	if err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// app carries state shared by all subcommands once persistent flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel string
	logFile  string

	logger      *slog.Logger
	cleanup     func()
	stopSignals func()
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:      stdout,
		stderr:      stderr,
		logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		cleanup:     func() {},
		stopSignals: func() {},
	}
}

// close stops signal handling and closes the log file. Safe to call more than once.
func (a *app) close() {
	a.stopSignals()
	a.cleanup()
	a.stopSignals = func() {}
	a.cleanup = func() {}
}

func (a *app) rootCmd() *cobra.Command {
	var runOpts scenario.Options
	root := &cobra.Command{
		Use:   "birdadapter",
		Short: "Demonstrate and detect the Adapter pattern",
		Long: `birdadapter shows a Sparrow squeaking like a toy duck through a BirdAdapter,
and can inspect Go source trees for the same adapter relationship.

Running without a subcommand is the same as "birdadapter run".`,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		Run: func(*cobra.Command, []string) {
			a.run(runOpts)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file")
	root.Flags().BoolVar(&runOpts.Color, "color", false, "render section headers in bold")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newInspectCmd(a))
	return root
}

// setup configures logging from the persistent flags, then installs a
// signal-cancelled context on the executing command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger, cleanup, err := logging.Setup(a.logFile, level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.logger = logger
	a.cleanup = cleanup

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := a.watchSignals(cmd.Context(), sigCh)
	a.stopSignals = func() {
		signal.Stop(sigCh)
		cancel()
	}
	cmd.SetContext(ctx)
	return nil
}

// watchSignals returns a context cancelled when a signal arrives on sigCh.
func (a *app) watchSignals(parent context.Context, sigCh <-chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case sig := <-sigCh:
			a.logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func (a *app) run(opts scenario.Options) {
	a.logger.Info("running adapter scenario", "color", opts.Color)
	scenario.Run(a.stdout, opts, a.logger)
}

func newRunCmd(a *app) *cobra.Command {
	var opts scenario.Options
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the sparrow, toy duck and bird adapter scenario",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			a.run(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Color, "color", false, "render section headers in bold")
	return cmd
}

type inspectFlags struct {
	output     string
	format     string
	maxMethods int
	opts       analyzer.AnalyzeOptions
}

func newInspectCmd(a *app) *cobra.Command {
	var f inspectFlags
	cmd := &cobra.Command{
		Use:   "inspect [dir]",
		Short: "Find adapter relationships in a Go source tree",
		Long: `inspect loads the Go packages under dir (default ".") and reports every
struct that holds one interface and exposes it as another.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return a.inspect(cmd.Context(), input, f)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the Mermaid diagram to this file")
	cmd.Flags().StringVar(&f.format, "format", "text", "stdout format (text, mermaid)")
	cmd.Flags().IntVar(&f.maxMethods, "max-methods", 5, "methods shown per interface box, 0 for all")
	cmd.Flags().StringVar(&f.opts.Filter, "filter", "", "package path prefix filter")
	cmd.Flags().BoolVar(&f.opts.IncludeStdlib, "include-stdlib", false, "include standard library interfaces")
	cmd.Flags().BoolVar(&f.opts.IncludeUnexported, "include-unexported", false, "include unexported types and interfaces")
	cmd.Flags().BoolVar(&f.opts.AdaptersOnly, "adapters-only", false, "drop types and interfaces that take no part in an adapter")
	return cmd
}

func (a *app) inspect(ctx context.Context, input string, f inspectFlags) error {
	if f.format != "text" && f.format != "mermaid" {
		return fmt.Errorf("unknown --format %q (valid: text, mermaid)", f.format)
	}

	target, err := resolver.Resolve(input, a.logger)
	if err != nil {
		a.logger.Error("failed to resolve input", "error", err)
		return fmt.Errorf("resolving input: %w", err)
	}

	result, err := analyzer.Analyze(ctx, target.ModuleRoot, target.Pattern, f.opts, a.logger)
	if err != nil {
		a.logger.Error("analysis failed", "error", err)
		return fmt.Errorf("analyzing packages: %w", err)
	}
	result = analyzer.Filter(result, f.opts)

	a.logger.Info("inspection complete",
		"interfaces", len(result.Interfaces), "types", len(result.Types),
		"relations", len(result.Relations), "adapters", len(result.Adapters))

	var detector enricher.PatternDetector = enricher.NewAdapterDetector()
	patterns := detector.Detect(result)
	for _, p := range patterns {
		a.logger.Info("pattern detected", "pattern", p.Name, "participants", p.Participants)
	}
	fmt.Fprintf(a.stderr, "Detected %d %s pattern(s)\n", len(patterns), enricher.AdapterPattern)

	diagramOpts := diagram.DefaultDiagramOptions()
	diagramOpts.MaxMethodsPerBox = f.maxMethods

	if f.output != "" {
		// Standalone .mmd files carry their own theme.
		fileOpts := diagramOpts
		fileOpts.IncludeInit = true
		if err := os.WriteFile(f.output, []byte(diagram.GenerateMermaid(result, fileOpts)), 0o644); err != nil {
			a.logger.Error("failed to write output file", "error", err)
			return fmt.Errorf("writing %s: %w", f.output, err)
		}
		fmt.Fprintf(a.stderr, "Wrote diagram to %s\n", f.output)
	}

	switch f.format {
	case "mermaid":
		fmt.Fprintln(a.stdout, diagram.GenerateMermaid(result, diagramOpts))
	default:
		fmt.Fprint(a.stdout, diagram.GenerateText(result))
	}
	return nil
}
