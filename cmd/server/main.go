package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/catalog/api/handler"
	"github.com/fastygo/catalog/internal/config"
	"github.com/fastygo/catalog/internal/infrastructure/monitor"
	"github.com/fastygo/catalog/internal/infrastructure/store"
	"github.com/fastygo/catalog/internal/middleware"
	"github.com/fastygo/catalog/internal/router"
	"github.com/fastygo/catalog/internal/services/lifecycle"
	"github.com/fastygo/catalog/pkg/httpcontext"
	"github.com/fastygo/catalog/pkg/logger"
	catalogUC "github.com/fastygo/catalog/usecase/catalog"
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

	backend, closeStore, err := store.Open(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open snapshot store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	manager.Register("store", lifecycle.ShutdownFunc(closeStore))

	mon, err := monitor.New(backend, cfg.Store.Driver, cfg.Monitor.Interval, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to create store monitor", zap.Error(err))
	}
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop(ctx)
		return nil
	})

	catalogUseCase := catalogUC.New(backend, zapLogger)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Restaurant: apiHandler.NewRestaurantHandler(catalogUseCase, ctxAdapter, zapLogger),
		Dish:       apiHandler.NewDishHandler(catalogUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	handler := router.New(handlers, zapLogger,
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.AccessLog(zapLogger),
	)

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()), zap.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Error("server stopped unexpectedly", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
