// Command frontend serves the static catalog UI.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/internal/config"
	"github.com/fastygo/catalog/internal/middleware"
	"github.com/fastygo/catalog/internal/services/lifecycle"
	"github.com/fastygo/catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	stopSignals := manager.Listen(cancel)
	defer stopSignals()

	if _, err := os.Stat(filepath.Join(cfg.Frontend.Dir, "index.html")); err != nil {
		zapLogger.Fatal("frontend directory has no index.html", zap.String("dir", cfg.Frontend.Dir), zap.Error(err))
	}

	server := &fasthttp.Server{
		Handler:      newHandler(cfg.Frontend.Dir, zapLogger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("frontend started", zap.String("address", cfg.FrontendAddress()), zap.String("dir", cfg.Frontend.Dir))
		if err := server.ListenAndServe(cfg.FrontendAddress()); err != nil {
			zapLogger.Error("frontend stopped unexpectedly", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("frontend_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// newHandler serves the files under dir, index.html for directories.
func newHandler(dir string, logger *zap.Logger) fasthttp.RequestHandler {
	fs := &fasthttp.FS{
		Root:               dir,
		IndexNames:         []string{"index.html"},
		GenerateIndexPages: false,
		Compress:           true,
	}
	return middleware.AccessLog(logger)(fs.NewRequestHandler())
}
