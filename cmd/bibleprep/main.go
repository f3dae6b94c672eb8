// Command bibleprep prepares Bible data files for the reading app.
// It splits translations into per-book files, attaches verse text to the
// topic dataset, looks up single references and exports translations to SQLite.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/bibleprep/internal/config"
	"github.com/FocuswithJustin/bibleprep/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for bibleprep.
type CLI struct {
	// Global flags
	ConfigFile string `name:"config" short:"c" help:"Config file (default: ./bibleprep.toml if present)" type:"path"`
	LogLevel   string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat  string `name:"log-format" help:"Log format: auto, json, text"`

	Split        SplitCmd        `cmd:"" help:"Split a translation into one JSON file per book"`
	Enrich       EnrichCmd       `cmd:"" help:"Attach verse text to the topic dataset"`
	Lookup       LookupCmd       `cmd:"" help:"Print the text of one reference"`
	ExportSQLite ExportSQLiteCmd `cmd:"" name:"export-sqlite" help:"Export a translation to an SQLite database"`
	Config       ConfigGroup     `cmd:"" help:"Configuration file helpers"`
	Version      VersionCmd      `cmd:"" help:"Print version information"`
}

// ConfigGroup contains configuration helpers.
type ConfigGroup struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample config file"`
}

// app carries what every command needs. Commands receive it from kong's
// Run bindings.
type app struct {
	ctx    context.Context
	cli    *CLI
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
}

func newApp(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*app, error) {
	a := &app{
		ctx:    logging.WithRunID(ctx, logging.NewRunID()),
		cli:    cli,
		stdout: stdout,
		stderr: stderr,
	}
	// Flags alone until a command asks for the config file.
	if err := a.initLogging(config.Default().Logging); err != nil {
		return nil, err
	}
	return a, nil
}

// config loads the configuration once and reapplies logging settings from it.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, path, exists, err := config.Load(a.cli.ConfigFile)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	if err := a.initLogging(cfg.Logging); err != nil {
		return nil, err
	}
	if exists {
		logging.DebugContext(a.ctx, "config loaded", "path", path)
	}
	return cfg, nil
}

func (a *app) initLogging(fallback config.Logging) error {
	level, err := logging.ParseLevel(firstNonEmpty(a.cli.LogLevel, fallback.Level))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	format, err := logging.ParseFormat(firstNonEmpty(a.cli.LogFormat, fallback.Format))
	if err != nil {
		return fmt.Errorf("--log-format: %w", err)
	}
	logging.InitLogger(level, format, a.stderr)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("bibleprep"),
		kong.Description("Bible data preparation: split translations, enrich topic verses"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	}
	return kong.New(cli, append(opts, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, &cli, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(a)
	kctx.FatalIfErrorf(err)
}
