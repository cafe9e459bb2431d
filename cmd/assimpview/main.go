// Package main is the entry point for the model viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/goassimp/internal/config"
	"github.com/Faultbox/goassimp/internal/logger"
	"github.com/Faultbox/goassimp/internal/viewer"
	"github.com/Faultbox/goassimp/pkg/assimp"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	detach, err := logger.AttachNative(logger.Log, cfg.Logging.Streams, cfg.Logging.Verbose)
	if err != nil {
		logger.Fatal("failed to attach native log", zap.Error(err))
	}
	defer detach()

	logger.Info("=== goassimp viewer ===", zap.Stringer("assimp", assimp.Version()))
	logger.Sugar.Debugf("Config: %+v", cfg)

	path := flag.Arg(0)
	if path == "" {
		path, err = pickModel()
		if errors.Is(err, dialog.ErrCancelled) {
			return
		}
		if err != nil {
			logger.Error("failed to pick a model", zap.Error(err))
			os.Exit(1)
		}
	}

	v, err := viewer.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Open(path); err != nil {
		logger.Error("failed to open model", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// pickModel asks for a model file with a native file dialog filtered to
// the importable extensions.
func pickModel() (string, error) {
	exts := assimp.Extensions()
	for i, ext := range exts {
		exts[i] = strings.TrimPrefix(ext, ".")
	}
	return dialog.File().
		Title("Open model").
		Filter("3D models", exts...).
		Filter("All files", "*").
		Load()
}
