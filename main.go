package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/shop"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.storefront"
	AppName = "Storefront"

	hydrateTimeout = 5 * time.Second
	flushTimeout   = 3 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, os.Getenv(config.LogLevelEnv))
	logger.Info("storefront starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIcon(myApp))
	myApp.Settings().SetTheme(ui.NewStoreTheme())

	settings := config.NewSettings(myApp)
	tuning, err := config.LoadTuning(settings.GetTuningFile())
	if err != nil {
		logger.Warn("tuning file ignored, using defaults", "error", err)
	}

	kv, err := storage.Open(settings.GetStorageBackend(), myApp)
	if err != nil {
		logger.Warn("storage backend unavailable, using preferences", "backend", settings.GetStorageBackend(), "error", err)
		kv = storage.NewPreferences(myApp.Preferences())
	}

	// Hydrate before the window exists so no tap can race the stored cart
	store := cart.NewStore(kv, logger)
	ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
	if err := store.Hydrate(ctx); err != nil {
		logger.Warn("cart hydration failed", "error", err)
	}
	cancel()

	lang := locale.NewManager(kv, logger)
	lang.Load()

	client := catalog.NewClient(settings.GetCatalogBaseURL(), tuning.Catalog.ProductListPath, nil, logger)
	pager := catalog.NewPager(client, lang.Current(), tuning.Catalog.PageSize, tuning.Catalog.MaxItems, logger)
	coord := flyout.NewCoordinator(tuning.FlyoutTiming(), nil, logger)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, settings, shop.Config{
		Cart:        store,
		Pager:       pager,
		Coordinator: coord,
		Locale:      lang,
		Logger:      logger,
	}, tuning)

	myWindow.ShowAndRun()

	ctx, cancel = context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := store.Flush(ctx); err != nil {
		logger.Warn("cart flush interrupted", "error", err)
	}
}
