// Package main is the entry point for the gaminal terminal shooter
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gaminal/engine"
)

type options struct {
	width, height int
	speed         int
	debug         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cfg := engine.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "gaminal",
		Short: "Terminal space shooter",
		Long:  `Gaminal is a terminal shooter: steer the ship with z/x, hold off the descending swarm and clear it before it clears you.`,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Width, cfg.Height, cfg.Speed = opts.width, opts.height, opts.speed
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), opts, cfg)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&opts.width, "width", cfg.Width, "arena width in cells")
	cmd.Flags().IntVar(&opts.height, "height", cfg.Height, "arena height in cells")
	cmd.Flags().IntVar(&opts.speed, "speed", cfg.Speed, "target frames per second")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runGame owns the terminal for the lifetime of one session
func runGame(ctx context.Context, opts *options, cfg engine.Config) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}
	runID := stampRunID()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGAMINAL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Session %s: %dx%d arena at %d fps", runID, cfg.Width, cfg.Height, cfg.Speed)
	if err := run(ctx, screen, cfg, engine.NewMonotonicTimeProvider()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
