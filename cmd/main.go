package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
	"github.com/mantra-gor/BillSane-Admin/internal/database"
	"github.com/mantra-gor/BillSane-Admin/internal/handler"
	"github.com/mantra-gor/BillSane-Admin/internal/keycipher"
	"github.com/mantra-gor/BillSane-Admin/internal/logger"
	"github.com/mantra-gor/BillSane-Admin/internal/middleware"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
	"github.com/mantra-gor/BillSane-Admin/internal/util"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "billsane-admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DatabasePath, log, cfg.Development)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	if cfg.SeedOnStart {
		if err := database.Seed(db, log); err != nil {
			return err
		}
	}

	key, err := cfg.Key()
	if err != nil {
		return err
	}
	cipher, err := keycipher.New(key)
	if err != nil {
		return err
	}

	tokens := util.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	licenses := service.NewLicenseService(db, cipher, log)
	operators := service.NewOperatorService(db, tokens, log)

	_, password, err := operators.EnsureDefault(ctx, cfg.Operator)
	if err != nil {
		return err
	}
	if password != "" {
		fmt.Fprintf(os.Stderr, "generated password for operator %q: %s\n", cfg.Operator.Username, password)
	}

	sheetSync, err := service.NewSheetSyncService(ctx, cfg.Sheets, log)
	if err != nil {
		return err
	}
	if sheetSync != nil {
		licenses.SetMirror(sheetSync)
		log.Info("sheet sync enabled", zap.String("sheet", cfg.Sheets.SheetName))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	h := handler.New(handler.Deps{
		Licenses:   licenses,
		Businesses: service.NewBusinessService(db, log),
		Masters:    service.NewMasterService(db),
		Operators:  operators,
		Logs:       service.NewOperationLogService(db),
		Statistics: service.NewStatisticsService(db),
		Tokens:     tokens,
		Ping:       sqlDB.PingContext,
		Log:        log,
	})

	app := fiber.New(fiber.Config{
		AppName:               "BillSane Admin",
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	h.Register(app)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr()))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownWait))
	if err := app.ShutdownWithTimeout(cfg.ShutdownWait); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
