// Package ui is the Fyne front end. It owns no application state: every
// screen renders from store snapshots pushed through the Bridge, and every
// callback goes back in through the router and the workflows.
package ui

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"lightbox/internal/config"
	"lightbox/internal/photos"
	"lightbox/internal/router"
	"lightbox/internal/service"
	"lightbox/internal/slideshow"
	"lightbox/internal/state"
)

var configPathFlag = flag.String("config", "", "Path to config file")

// App represents the whole application with all its windows, widgets and
// wiring.
type App struct {
	app     fyne.App
	MainWin fyne.Window

	cfg       config.Config
	store     *state.Store
	services  *service.Container
	router    *router.Router
	loader    *photos.Loader
	slideshow *slideshow.Manager
	bridge    *Bridge
	logs      *LogManager

	pages     map[state.Page]fyne.CanvasObject
	pageViews map[state.Page]pageView

	statusLoading *statusIndicator
	errorBanner   *errorBanner

	ctx    context.Context
	cancel context.CancelFunc

	mainModKey fyne.KeyModifier
}

// pageView is implemented by each page so the Bridge can push fresh state
// snapshots into it.
type pageView interface {
	Refresh(s state.AppState)
}

// CreateApplication builds and runs the viewer.
func CreateApplication() {
	flag.Parse()
	log.SetPrefix("lightbox ")

	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fyneApp := app.NewWithID("com.github.lightbox.viewer")

	a := &App{
		app:       fyneApp,
		cfg:       cfg,
		store:     state.NewStore(),
		slideshow: slideshow.NewManager(cfg.SlideshowInterval),
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	// Logs go to the status bar once it exists, to the console before that.
	appLoggerFunc := func(message string) {
		if a.logs != nil {
			fyne.Do(func() { a.logs.AddMessage(message) })
		} else {
			log.Print(message)
		}
	}

	a.services, err = service.NewContainer(cfg.CacheDir, appLoggerFunc)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	a.router = router.New(a.store)
	a.loader = photos.NewLoader(a.store, a.services.FS, appLoggerFunc)

	a.MainWin = fyneApp.NewWindow("Lightbox")
	a.MainWin.SetMaster()
	a.MainWin.SetCloseIntercept(func() {
		a.cancel()
		if err := a.services.Close(); err != nil {
			log.Printf("Error closing thumbnail cache: %v", err)
		}
		a.MainWin.Close()
	})

	a.MainWin.SetContent(a.buildMainUI())
	a.buildKeyboardShortcuts()

	a.bridge = NewBridge(a.store, a)
	a.bridge.Start()

	go photos.RunSlideshow(a.ctx, a.store, a.slideshow)

	// An album path on the command line skips the welcome page.
	if args := flag.Args(); len(args) > 0 {
		dir, err := filepath.Abs(args[0])
		if err == nil {
			go a.loader.LoadAlbum(a.ctx, dir)
		}
	}

	a.MainWin.Resize(fyne.NewSize(1200, 800))
	a.MainWin.CenterOnScreen()
	a.MainWin.ShowAndRun()
}

// openAlbum starts an album load off the UI thread and kicks the dimension
// prefetch when it settles.
func (a *App) openAlbum(dir string) {
	go func() {
		a.loader.LoadAlbum(a.ctx, dir)
		photos.PrefetchDimensions(a.ctx, a.store, a.services.Images)
	}()
}

func (a *App) buildMainUI() fyne.CanvasObject {
	welcome := newWelcomePage(a)
	importPage := newImportPage(a)
	grid := newGridPage(a)
	loupe := newLoupePage(a)

	a.logs = NewLogManager(DefaultMaxLogMessages)
	status := a.buildStatusBar()

	pages := container.NewStack(
		welcome.content,
		importPage.content,
		grid.content,
		loupe.content,
	)

	a.pages = map[state.Page]fyne.CanvasObject{
		state.PageWelcome: welcome.content,
		state.PageImport:  importPage.content,
		state.PageGrid:    grid.content,
		state.PageLoupe:   loupe.content,
	}
	a.pageViews = map[state.Page]pageView{
		state.PageWelcome: welcome,
		state.PageImport:  importPage,
		state.PageGrid:    grid,
		state.PageLoupe:   loupe,
	}

	return container.NewBorder(nil, status, nil, nil, pages)
}

func (a *App) quit() {
	a.cancel()
	if err := a.services.Close(); err != nil {
		log.Printf("Error closing thumbnail cache: %v", err)
	}
	a.app.Quit()
}
