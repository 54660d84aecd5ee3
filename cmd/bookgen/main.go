package main

import (
	"errors"
	"io/fs"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/app"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/config"
)

// @title        Bookstore Data Generator API
// @version      1.0
// @description  Deterministic fake bookstore catalog and cover images.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
