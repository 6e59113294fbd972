package main

import (
	"runtime"

	"go.uber.org/zap"

	"cubeview/config"
	"cubeview/gui"
	"cubeview/logger"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cfg, cfgErr := config.Load(config.DefaultPath)

	log := logger.New(cfg.Debug, cfg.LogFile)
	defer log.Sync()
	if cfgErr != nil {
		log.Warn("using default config", zap.Error(cfgErr))
	}

	ui := gui.New(cfg, log)
	if err := ui.Run(); err != nil {
		log.Fatal("viewer failed", zap.Error(err))
	}
}
