package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/wayang/internal/config"
	"github.com/ytget/wayang/internal/download"
	"github.com/ytget/wayang/internal/engine"
	"github.com/ytget/wayang/internal/engine/textview"
	"github.com/ytget/wayang/internal/logging"
	"github.com/ytget/wayang/internal/store"
	"github.com/ytget/wayang/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.wayang"
	AppName = "Wayang Browser"
)

func main() {
	// Engine flags are forced before anything reads the environment
	if err := os.Setenv(config.EngineFlagsEnv, config.DefaultEngineFlags); err != nil {
		panic(err)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("invalid environment configuration, using defaults", zap.Error(cfgErr))
	}

	flags := engine.ParseFlags(cfg.Engine.Flags)
	logger.Info("starting",
		zap.String("app", AppName),
		zap.String("version", version),
		zap.String("data_file", cfg.Data.File),
		zap.Stringer("engine_flags", flags),
		zap.Bool("gpu_disabled", flags.GPUDisabled()),
	)

	myApp := app.NewWithID(AppID)

	assets := ui.LoadAssets(cfg.Assets, logger.Named("assets"))
	if assets.AppIcon != nil {
		myApp.SetIcon(assets.AppIcon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))
	myWindow.SetMaster()
	if assets.AppIcon != nil {
		myWindow.SetIcon(assets.AppIcon)
	}

	reader := textview.New(textview.Options{
		UserAgent:    cfg.Engine.UserAgent,
		Timeout:      cfg.Engine.Timeout,
		MaxPageBytes: cfg.Engine.MaxPageBytes,
		Flags:        flags,
		Logger:       logger.Named("engine"),
	})

	ui.NewRootUI(myWindow, myApp, ui.Options{
		Factory:   reader.Factory(),
		Store:     store.New(cfg.Data.File, logger.Named("store")),
		Downloads: download.NewService(),
		Settings:  config.NewSettings(myApp),
		Assets:    assets,
		Logger:    logger,
	})

	myWindow.ShowAndRun()
}
