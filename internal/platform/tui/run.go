package tui

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// ErrInit is returned when the terminal, configuration or program could not
// be set up. It is never retried.
var ErrInit = errors.New("initialization failure")

// probeTerminal checks that fd is an interactive terminal and returns its size.
func probeTerminal(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("tui: output is not a terminal: %w", ErrInit)
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("tui: cannot get terminal size: %v: %w", err, ErrInit)
	}
	return width, height, nil
}

// newScene builds the scene and its runtime config from a loaded configuration.
func newScene(cfg config.DodgeConfig, width, height int, seed int64) (*dodge.Scene, core.RuntimeConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, core.RuntimeConfig{}, fmt.Errorf("tui: %w: %w", ErrInit, err)
	}
	params, err := dodge.ParamsFromConfig(cfg)
	if err != nil {
		return nil, core.RuntimeConfig{}, fmt.Errorf("tui: %w: %w", ErrInit, err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return dodge.New(params), cfg.ToRuntime(width, height, seed), nil
}

// Run starts the Bubble Tea program and blocks until the player quits.
// A quit signal returns nil; setup and draw failures are returned.
func Run(cfg config.DodgeConfig, logger *log.Logger) error {
	width, height, err := probeTerminal(int(os.Stdout.Fd()))
	if err != nil {
		return err
	}

	scene, runtime, err := newScene(cfg, width, height, 0)
	if err != nil {
		return err
	}
	logger.Debug("starting scene",
		"cols", width,
		"rows", height,
		"seed", runtime.Seed,
		"hazards", cfg.Hazards.Count,
	)

	p := tea.NewProgram(
		NewModel(scene, runtime, cfg.HoldFrames()),
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Blur drops held keys
	)

	stop := quitOnHangup(p)
	final, err := p.Run()
	stop()

	if err != nil {
		if err = runError(err); err != nil {
			return err
		}
		logger.Debug("session interrupted")
		return nil
	}

	if m, ok := final.(Model); ok {
		logger.Debug("session ended", "frames", m.Frame())
		return m.Err()
	}
	return nil
}

// runError classifies the error returned by the Bubble Tea program.
// An interrupt is a normal quit; anything else, including a recovered
// panic reported as tea.ErrProgramKilled, is fatal.
func runError(err error) error {
	if err == nil || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return fmt.Errorf("tui: program failed: %w", err)
}

// quitter is the part of tea.Program used to request shutdown.
type quitter interface {
	Quit()
}

// quitOnHangup asks p to quit when the controlling terminal goes away.
// The returned func stops watching.
func quitOnHangup(p quitter) func() {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGHUP)
	go watchHangup(sig, done, p)

	return func() {
		signal.Stop(sig)
		close(done)
	}
}

// watchHangup calls p.Quit on the first signal received before done closes.
func watchHangup(sig <-chan os.Signal, done <-chan struct{}, p quitter) {
	select {
	case <-sig:
		p.Quit()
	case <-done:
	}
}
