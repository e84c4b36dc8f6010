package ui

import (
	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/ytget/wayang/internal/config"
	"github.com/ytget/wayang/internal/logging"
)

// Assets are the optional files the window decorates itself with. Any of
// them may be nil.
type Assets struct {
	AppIcon fyne.Resource
	Favicon fyne.Resource
	Font    fyne.Resource
}

// FontFamily returns the family name of the bundled font, or "" when the
// default face is used
func (a Assets) FontFamily() string {
	if a.Font == nil {
		return ""
	}
	return "Roboto"
}

// LoadAssets loads the configured asset files. Missing files are logged
// and left nil.
func LoadAssets(cfg config.AssetConfig, logger *logging.Logger) Assets {
	return Assets{
		AppIcon: loadResource(cfg.AppIcon, logger),
		Favicon: loadResource(cfg.Favicon, logger),
		Font:    loadResource(cfg.Font, logger),
	}
}

func loadResource(path string, logger *logging.Logger) fyne.Resource {
	if path == "" {
		return nil
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		logger.Debug("asset not loaded", zap.String("path", path), zap.Error(err))
		return nil
	}
	return res
}
