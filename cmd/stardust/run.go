package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/1siamBot/stardust/engine/app"
	"github.com/1siamBot/stardust/engine/audio"
	"github.com/1siamBot/stardust/engine/config"
	"github.com/1siamBot/stardust/engine/driver"
	"github.com/1siamBot/stardust/engine/locale"
	"github.com/1siamBot/stardust/engine/logging"
	"github.com/1siamBot/stardust/engine/render"
	"github.com/1siamBot/stardust/engine/scene"
	"github.com/1siamBot/stardust/engine/vfs"
)

var flagHeadless time.Duration

// resources are shared by the sandbox scenes for the whole run
type resources struct {
	cfg    config.Config
	logger *log.Logger
	fs     *vfs.FS
	audio  *audio.System
	rng    *rand.Rand

	// loadTexture is nil when running without a window
	loadTexture func(name string) (render.Texture, error)
}

func runSandbox(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.FrameRate.CapFPS = true
		cfg.FrameRate.FPSLimit = flagFPS
	}
	loggers := logging.Stderr(logLevel(cfg.LogLevel))
	loggers.Engine.Debug("config loaded", "path", cfgPath)

	fsys, err := mountAssets(loggers.Engine)
	if err != nil {
		return err
	}
	defer fsys.Close()

	loc, err := locale.Load(cfg.Locale, fsys, "locale")
	if errors.Is(err, locale.ErrUnknownLocale) {
		loggers.Engine.Warn("unknown locale, using en", "locale", cfg.Locale)
		loc, err = locale.Load("en", fsys, "locale")
	}
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	res := &resources{
		cfg:    cfg,
		logger: loggers.Client,
		fs:     fsys,
		audio:  audio.NewSystem(cfg.Audio.Volumes, loggers.Engine),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	loggers.Client.Debug("sandbox seeded", "seed", seed)

	if flagHeadless > 0 {
		return runHeadless(cfg, loggers, loc, res)
	}

	res.audio.Init()
	defer res.audio.Close()

	textures := driver.NewTextures()
	defer textures.Clear()
	res.loadTexture = func(name string) (render.Texture, error) {
		return driver.LoadTexture(textures, fsys, name)
	}

	platform := driver.NewPlatform(cfg.Renderer.LogicalWidth, cfg.Renderer.LogicalHeight, loggers.Engine)
	driver.Configure(cfg)
	a, err := app.New(platform, cfg,
		app.WithLogger(loggers.Engine),
		app.WithAudio(res.audio),
		app.WithLocale(loc),
		app.WithFrameBudget(0))
	if err != nil {
		loggers.Engine.Error("failed to initialise", "err", err)
		return err
	}
	if err := pushScenes(a, newSandbox(a, res), newFireworks(a, res)); err != nil {
		return err
	}

	if err := driver.Run(a, platform); err != nil {
		loggers.Engine.Error("run failed", "err", err)
		return err
	}
	return nil
}

// runHeadless drives the same scenes on a null platform until the
// duration runs out or the process is interrupted
func runHeadless(cfg config.Config, loggers logging.Loggers, loc *locale.Locale, res *resources) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagHeadless)
	defer cancel()

	platform := app.NewNullPlatform(cfg.Renderer.LogicalWidth, cfg.Renderer.LogicalHeight)
	a, err := app.New(platform, cfg,
		app.WithLogger(loggers.Engine),
		app.WithAudio(res.audio),
		app.WithLocale(loc))
	if err != nil {
		return err
	}
	if err := pushScenes(a, newSandbox(a, res), newFireworks(a, res)); err != nil {
		return err
	}

	err = a.Run(ctx)
	loggers.Client.Info("headless run finished", "frames", a.FrameCount(), "elapsed", a.ElapsedTime())
	return err
}

// pushScenes queues scenes in order. Before Start pushing only queues;
// once started, a scene landing on an empty queue loads at once and its
// failure is returned here.
func pushScenes(a *app.Application, scenes ...scene.Scene) error {
	for _, s := range scenes {
		if err := a.PushScene(s); err != nil {
			return fmt.Errorf("push %s: %w", s.Name(), err)
		}
	}
	return nil
}

// mountAssets mounts the assets directory and any archives inside it, so
// a packed patch shadows loose files
func mountAssets(logger *log.Logger) (*vfs.FS, error) {
	dir := flagAssets
	if dir == "" {
		dir = driver.AssetsDir()
	}
	fsys := vfs.New()
	if err := fsys.MountDir(dir); err != nil {
		if flagAssets != "" {
			return nil, err
		}
		logger.Warn("no assets directory, running without assets", "dir", dir)
		return fsys, nil
	}

	paks, err := filepath.Glob(filepath.Join(dir, "*.pak"))
	if err != nil {
		return nil, fmt.Errorf("find archives: %w", err)
	}
	for _, pak := range paks {
		if err := fsys.MountArchive(pak); err != nil {
			logger.Warn("skipping archive", "path", pak, "err", err)
			continue
		}
	}
	logger.Debug("assets mounted", "mounts", fsys.Mounts())
	return fsys, nil
}

// texture loads a texture through the platform, or returns nil so the
// caller draws untextured
func (res *resources) texture(name string) render.Texture {
	if res.loadTexture == nil {
		return nil
	}
	tex, err := res.loadTexture(name)
	if err != nil {
		res.logger.Warn("texture unavailable, drawing untextured", "name", name, "err", err)
		return nil
	}
	return tex
}

// sound loads a WAV effect, or returns nil to play nothing
func (res *resources) sound(name string) *audio.Sound {
	data, err := res.fs.ReadFile(name)
	if err != nil {
		res.logger.Warn("sound unavailable", "name", name, "err", err)
		return nil
	}
	snd, err := audio.LoadWAV(bytes.NewReader(data))
	if err != nil {
		res.logger.Warn("sound unreadable", "name", name, "err", err)
		return nil
	}
	return snd
}
