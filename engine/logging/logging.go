// Package logging builds the charmbracelet loggers used across the engine.
// The engine and game code log through separate sub-loggers so their lines
// can be told apart.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Loggers holds the root logger and its engine and client children
type Loggers struct {
	Root   *log.Logger
	Engine *log.Logger
	Client *log.Logger
}

// New creates loggers writing to w at the named level ("debug", "info",
// "warn", "error")
func New(w io.Writer, level string) (Loggers, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return Loggers{}, fmt.Errorf("log level %q: %w", level, err)
	}
	root := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stardust",
		Level:           lvl,
	})
	return Loggers{
		Root:   root,
		Engine: root.WithPrefix("stardust/engine"),
		Client: root.WithPrefix("stardust/client"),
	}, nil
}

// Stderr is New on os.Stderr, falling back to info on a bad level
func Stderr(level string) Loggers {
	l, err := New(os.Stderr, level)
	if err != nil {
		l, _ = New(os.Stderr, "info")
		l.Engine.Warn("unknown log level, using info", "level", level)
	}
	return l
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}
