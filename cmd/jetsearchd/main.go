package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mvarner/jetsearch/internal/dbusx"
	"github.com/mvarner/jetsearch/internal/launch"
	"github.com/mvarner/jetsearch/internal/projects"
	"github.com/mvarner/jetsearch/internal/provider"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "jetsearchd",
		Usage:   "GNOME Shell search provider for JetBrains recent projects",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "providers",
				Usage: "list the supported products and exit",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"JETSEARCH_LOG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("providers") {
		return listProviders(c)
	}

	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return serve(ctx, logger)
}

// serve connects to the session bus, exports a provider for every installed
// product and blocks until the context is cancelled.
func serve(ctx context.Context, logger *slog.Logger) error {
	logger.Info("starting", "version", version)

	service, err := dbusx.NewService(logger)
	if err != nil {
		return err
	}
	defer service.Close()

	registered := 0
	for _, def := range projects.Definitions {
		entry, err := launch.FindEntry(def.DesktopID)
		if err != nil {
			if errors.Is(err, launch.ErrEntryNotFound) {
				logger.Debug("product not installed", "app", def.DesktopID)
				continue
			}
			return err
		}

		source, err := projects.NewSource(def.DesktopID, def.Config, logger)
		if err != nil {
			return err
		}

		session, err := provider.NewSession(def.DesktopID, entry.Icon, source,
			launch.NewLauncher(logger), logger.With("app", def.DesktopID))
		if err != nil {
			return err
		}

		if err := service.RegisterProvider(def.ObjectPath(), session); err != nil {
			return err
		}
		registered++
	}

	if registered == 0 {
		logger.Warn("no supported products installed, serving an empty bus name")
	}

	// Claim the name only after every object is exported, so the shell never
	// sees the name without its providers.
	if err := service.AcquireName(projects.BusName); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// listProviders prints the supported product labels, sorted.
func listProviders(c *cli.Context) error {
	labels := make([]string, 0, len(projects.Definitions))
	for _, def := range projects.Definitions {
		labels = append(labels, def.Label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintln(c.App.Writer, label)
	}
	return nil
}

// newLogger builds a text logger on stderr at the requested level. Stdout
// stays clean for flag output.
func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}
