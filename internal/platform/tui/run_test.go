package tui

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func TestProbeTerminalRejectsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	_, _, err = probeTerminal(int(w.Fd()))
	if !errors.Is(err, ErrInit) {
		t.Errorf("probeTerminal(pipe) error = %v, expected ErrInit", err)
	}
}

func TestNewScene(t *testing.T) {
	scene, runtime, err := newScene(config.DefaultDodgeConfig(), 100, 30, 9)
	if err != nil {
		t.Fatalf("newScene() error = %v", err)
	}
	if scene.Title() != "Game" {
		t.Errorf("Title() = %q, expected %q", scene.Title(), "Game")
	}
	if runtime.ScreenW != 100 || runtime.ScreenH != 30 || runtime.Seed != 9 {
		t.Errorf("runtime = %+v", runtime)
	}
}

func TestNewSceneTimeSeed(t *testing.T) {
	_, runtime, err := newScene(config.DefaultDodgeConfig(), 80, 24, 0)
	if err != nil {
		t.Fatalf("newScene() error = %v", err)
	}
	if runtime.Seed == 0 {
		t.Error("Zero seed should be replaced with a time-based seed")
	}
}

func TestNewSceneInvalidConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Colors.Player = "nope"

	_, _, err := newScene(cfg, 80, 24, 1)
	if !errors.Is(err, ErrInit) {
		t.Errorf("newScene() error = %v, expected ErrInit", err)
	}
}

func TestRunError(t *testing.T) {
	panicked := fmt.Errorf("%w: %w", tea.ErrProgramKilled, errors.New("program experienced a panic"))

	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"clean exit", nil, false},
		{"interrupt", tea.ErrInterrupted, false},
		{"wrapped interrupt", fmt.Errorf("run: %w", tea.ErrInterrupted), false},
		{"recovered panic", panicked, true},
		{"killed", tea.ErrProgramKilled, true},
		{"other failure", errors.New("could not open tty"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := runError(tc.err)
			if (err != nil) != tc.fatal {
				t.Fatalf("runError(%v) = %v, expected fatal = %v", tc.err, err, tc.fatal)
			}
			if tc.fatal && !errors.Is(err, tc.err) {
				t.Errorf("runError(%v) = %v, expected it to wrap the cause", tc.err, err)
			}
		})
	}
}

type fakeQuitter struct {
	quit chan struct{}
}

func (f *fakeQuitter) Quit() {
	close(f.quit)
}

func TestWatchHangupQuits(t *testing.T) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	q := &fakeQuitter{quit: make(chan struct{})}

	go watchHangup(sig, done, q)
	sig <- syscall.SIGHUP

	select {
	case <-q.quit:
	case <-time.After(time.Second):
		t.Fatal("Hangup should quit the program")
	}
}

func TestWatchHangupStops(t *testing.T) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	q := &fakeQuitter{quit: make(chan struct{})}

	finished := make(chan struct{})
	go func() {
		watchHangup(sig, done, q)
		close(finished)
	}()
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("watchHangup should return once stopped")
	}
	select {
	case <-q.quit:
		t.Error("Stopping should not quit the program")
	default:
	}
}

func TestQuitOnHangupStop(t *testing.T) {
	q := &fakeQuitter{quit: make(chan struct{})}
	stop := quitOnHangup(q)
	stop()
}
