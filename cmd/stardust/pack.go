package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1siamBot/stardust/engine/logging"
	"github.com/1siamBot/stardust/engine/vfs"
)

var packCmd = &cobra.Command{
	Use:   "pack <dir> <out.pak>",
	Short: "Build an asset archive",
	Long: `Pack every file under <dir> into an lz4-compressed archive that can be
mounted in place of the directory.

Examples:
  stardust pack ./assets ./assets.pak`,
	Args: cobra.ExactArgs(2),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	dir, out := args[0], args[1]
	logger := logging.Stderr(logLevel("info")).Client

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	w := vfs.NewWriter(f)
	if err := w.AddDir(dir); err != nil {
		f.Close()
		return fmt.Errorf("pack %s: %w", dir, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("archive written", "path", out, "files", w.Len())
	return nil
}

// logLevel returns the --log-level flag or fallback
func logLevel(fallback string) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return fallback
}
