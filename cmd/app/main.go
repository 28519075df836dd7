package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"purchasing/cmd"
	httpin "purchasing/internal/adapters/in/http"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(configs.Logger())
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gormDB, err := openDatabase(configs, zapLogger)
	if err != nil {
		zapLogger.Fatal("open database", zap.Error(err))
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, zapLogger)
	if err != nil {
		zapLogger.Fatal("compose application", zap.Error(err))
	}
	startWebServer(app, configs.HTTPPort, zapLogger)
}

// openDatabase leaves gorm's error translation off: the repositories need the
// raw *pgconn.PgError to tell which unique constraint was violated.
func openDatabase(configs cmd.Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(configs.LogLevel),
			logger.WithIgnoreRecordNotFoundError(true),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := postgres.Migrate(ctx, gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func startWebServer(app cmd.CompositionRoot, port string, zapLogger *zap.Logger) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		zapLogger.Fatal("create http server", zap.Error(err))
	}
	e := httpin.NewEcho(zapLogger, server)

	go func() {
		zapLogger.Info("http server starting", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("http server shutdown", zap.Error(err))
	}
}
