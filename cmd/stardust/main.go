// stardust runs the engine sandbox: a particle fountain, a keyboard-driven
// sprite, a physics crate and a fireworks scene to switch to.
//
// Usage:
//
//	stardust                       - Run the sandbox in a window
//	stardust --headless 5s         - Run the sandbox without a window for 5s
//	stardust pack <dir> <out.pak>  - Build an asset archive
//	stardust genassets [dir]       - Generate the sandbox assets
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.stardust, ./config)
//	--assets <dir>      - Assets directory (default: next to the binary)
//	--log-level <lvl>   - debug, info, warn or error
//	--seed <value>      - RNG seed for reproducible particles
//	--fps <rate>        - Frame-rate cap
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagSeed     uint64
	flagFPS      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardust",
	Short: "Stardust - a small 2D engine sandbox",
	Long: `Stardust runs the engine sandbox scene.

Controls:
  Arrows/WASD  - Move the square
  Space        - Play a sound and burst particles
  Enter        - Kill every particle
  C            - Drop a crate at the cursor
  M            - Toggle relative mouse mode
  Mouse drag   - Move all particles
  Wheel        - Grow or shrink all particles
  F2           - Screenshot
  F11          - Toggle fullscreen
  Esc          - Next scene (quits after the last)`,
	SilenceUsage: true,
	RunE:         runSandbox,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Assets directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame-rate cap override (0 = config)")

	rootCmd.Flags().DurationVar(&flagHeadless, "headless", 0, "Run without a window for this long")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(genAssetsCmd)
}
