// dodge is a terminal simulation: steer a red circle around bouncing blue
// circles. Touching one sends you back to the center.
//
// Usage:
//
//	dodge
//
// Controls:
//
//	W/A/S/D  - Move
//	Esc      - Quit
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dodge",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the bouncing circles in your terminal",
	Long: `Dodge runs an 800x600 world in your terminal. You are the red circle;
avoid the blue ones. A hit sends you back to the center.

Controls:
  W/A/S/D  - Move (hold to keep moving)
  Esc      - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDodge,
}

func runDodge(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", tui.ErrInit, err)
	}
	return tui.Run(cfg, logger)
}
