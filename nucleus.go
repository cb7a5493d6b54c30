// Package nucleus wires configuration, resources and the screen manager into
// a runnable application.
package nucleus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agiangrant/nucleus/internal/appfs"
	"github.com/agiangrant/nucleus/internal/config"
	"github.com/agiangrant/nucleus/internal/resource"
	"github.com/agiangrant/nucleus/retained"
	"github.com/agiangrant/nucleus/screens"
	"github.com/agiangrant/nucleus/tw"
)

// Version is the nucleus release.
const Version = "0.1.0"

// GamesDir is the directory under the local app location whose files become
// main menu entries.
const GamesDir = "games"

// Options configures NewApp.
type Options struct {
	// ConfigPath is the file the configuration came from. Relative resource
	// and theme paths resolve against its directory.
	ConfigPath string

	// Logger defaults to log.Default().
	Logger *log.Logger

	// Files locates the games directory. Nil disables game entries.
	Files *appfs.FS
}

// App is a configured nucleus instance.
type App struct {
	cfg       config.Config
	opts      Options
	logger    *log.Logger
	resources *resource.Store
	manager   *retained.Manager
}

// NewApp validates cfg, registers the theme, preloads resources and builds
// the screen manager. Missing resources are logged rather than returned;
// screens fall back to placeholders for them.
func NewApp(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if cfg.UI.Theme != "" {
		theme := config.ResolvePath(opts.ConfigPath, cfg.UI.Theme)
		tc, err := tw.LoadTheme(os.DirFS(filepath.Dir(theme)), filepath.Base(theme))
		if err != nil {
			return nil, fmt.Errorf("failed to load theme: %w", err)
		}
		tw.SetConfig(tc)
	}

	store := resource.NewStore(logger)
	if dir := cfg.Resources.Dir; dir != "" {
		root := config.ResolvePath(opts.ConfigPath, dir)
		if err := store.Preload(ctx, os.DirFS(root), cfg.Resources.Images, cfg.Resources.Fonts); err != nil {
			logger.Printf("[resource] preload from %s: %v", root, err)
		}
	}

	mcfg := retained.DefaultManagerConfig()
	mcfg.Surface = retained.Surface{
		Width:  cfg.Surface.Width,
		Height: cfg.Surface.Height,
		DPI:    cfg.Surface.DPI,
	}
	mcfg.Resources = store
	mcfg.Logger = logger
	mcfg.Debug = cfg.UI.Debug
	mcfg.TargetFPS = cfg.UI.TargetFPS
	mcfg.Breakpoints = tw.GetBreakpoints()

	return &App{
		cfg:       cfg,
		opts:      opts,
		logger:    logger,
		resources: store,
		manager:   retained.NewManager(mcfg),
	}, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config { return a.cfg }

// Manager returns the screen manager.
func (a *App) Manager() *retained.Manager { return a.manager }

// Resources returns the preloaded resource store.
func (a *App) Resources() *resource.Store { return a.resources }

// Start pushes the logo screen. The logo hands over to the emulator when a
// boot path is configured and to the main menu otherwise.
func (a *App) Start() {
	a.manager.PushScreen(screens.NewLogo(a.manager.Context(), screens.LogoOptions{
		Duration: a.cfg.LogoDuration(),
		BootPath: a.cfg.Boot.Path,
		Menu:     a.Menu(),
	}))
}

// Menu returns the main menu entries: one per file in the games directory,
// sorted by name, followed by Quit.
func (a *App) Menu() []screens.Entry {
	var entries []screens.Entry
	for _, g := range a.games() {
		entries = append(entries, screens.Entry{
			Label: strings.TrimSuffix(g.name, filepath.Ext(g.name)),
			Action: func(ctx *retained.Context) {
				ctx.PushScreen(screens.NewEmulator(ctx, g.path))
			},
		})
	}
	return append(entries, screens.Entry{
		Label: "Quit",
		Action: func(ctx *retained.Context) {
			if top := ctx.Top(); top != nil {
				top.Finish()
			}
		},
	})
}

type game struct {
	name string
	path string
}

// games lists the regular files of GamesDir, sorted by name.
func (a *App) games() []game {
	if a.opts.Files == nil {
		return nil
	}
	dir, err := a.opts.Files.Path(appfs.Local)
	if err != nil {
		return nil
	}
	list, err := a.opts.Files.ListDirectory(appfs.Local, GamesDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.logger.Printf("[ui] list %s: %v", GamesDir, err)
		}
		return nil
	}
	var games []game
	for _, e := range list {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		games = append(games, game{name: e.Name(), path: filepath.Join(dir, GamesDir, e.Name())})
	}
	return games
}

// Run starts the logo if nothing is on the stack and drives the manager until
// every screen has finished or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.manager.Top() == nil {
		a.Start()
	}
	return a.manager.Run(ctx)
}

// RunFrames ticks the manager at the configured frame rate for at most n
// frames without waiting in real time. It returns the number of frames run,
// stopping early once the stack empties.
func (a *App) RunFrames(n int) int {
	if a.manager.Top() == nil {
		a.Start()
	}
	delta := time.Second / time.Duration(a.cfg.UI.TargetFPS)
	for i := range n {
		if !a.manager.Tick(delta) {
			return i + 1
		}
	}
	return n
}
