// Command effectivego lists and runs the lesson catalogue.
//
// All wiring lives here: each chapter package exposes its demos as data
// and this composition root registers them. No chapter registers itself
// through init side effects.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/sghaida/effectivego/basics"
	"github.com/sghaida/effectivego/catalog"
	"github.com/sghaida/effectivego/classes"
	"github.com/sghaida/effectivego/conc"
	"github.com/sghaida/effectivego/construct"
	"github.com/sghaida/effectivego/enums"
	"github.com/sghaida/effectivego/errs"
	"github.com/sghaida/effectivego/generics"
	"github.com/sghaida/effectivego/internal/runcfg"
	"github.com/sghaida/effectivego/methods"
	"github.com/sghaida/effectivego/object"
	"github.com/sghaida/effectivego/serial"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildRegistry wires every chapter's demos. Registration order is
// chapter order; duplicates are a programming error surfaced at startup.
func buildRegistry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	chapters := [][]catalog.Demo{
		construct.Demos(),
		object.Demos(),
		classes.Demos(),
		generics.Demos(),
		enums.Demos(),
		methods.Demos(),
		basics.Demos(),
		errs.Demos(),
		conc.Demos(),
		serial.Demos(),
	}
	for _, demos := range chapters {
		if err := reg.Register(demos...); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// newLogger builds the slog logger the demos narrate through.
func newLogger(cfg runcfg.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	case "text":
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})
	}
	return slog.New(h)
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "effectivego",
		Short: "Runnable catalogue of Go design lessons",
		Long: `effectivego is a catalogue of small runnable lessons, one per design
topic, organized into chapters. Each lesson pairs a broken rendition with
the idiomatic one and narrates the difference.

Example:
  effectivego list --chapter construct
  effectivego run builder 26 open-calls`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(newListCmd(), newRunCmd(&configPath))
	return rootCmd
}

func newListCmd() *cobra.Command {
	var chapter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := buildRegistry()
			if err != nil {
				return err
			}

			demos := reg.All()
			if chapter != "" {
				demos = reg.Chapter(chapter)
				if len(demos) == 0 {
					return fmt.Errorf("no such chapter %q", chapter)
				}
			}
			for _, d := range demos {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-20s %-10s %s\n", d.Item, d.Slug, d.Chapter, d.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chapter, "chapter", "", "only list one chapter")
	return cmd
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <slug|item>...",
		Short: "Run one or more demos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := runcfg.Load(*configPath)
			if err != nil {
				return err
			}
			reg, err := buildRegistry()
			if err != nil {
				return err
			}
			log := newLogger(cfg.Log)

			for _, name := range args {
				demo, err := reg.Get(name)
				if err != nil {
					return err
				}
				if err := runDemo(cmd.Context(), log, demo, cfg.Demo.Timeout); err != nil {
					return fmt.Errorf("demo %q: %w", demo.Slug, err)
				}
			}
			return nil
		},
	}
}

// runDemo executes one demo under the configured timeout.
func runDemo(parent context.Context, log *slog.Logger, demo catalog.Demo, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	demoLog := log.With("item", demo.Item, "slug", demo.Slug)
	demoLog.Info("=== " + demo.Summary)
	return demo.Run(ctx, demoLog)
}
