package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"godesa/internal/config"
	"godesa/internal/dbmongo"
	"godesa/internal/dbmysql"
	"godesa/internal/di"
	"godesa/internal/httpapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	logger.Info("connected to MySQL", zap.String("database", cfg.Database.DatabaseName))

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Close(context.Background())

	storage, err := dbmongo.NewStorage(mongoClient, cfg.Server.MediaBaseURL)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	authSvc := di.InitAuthService(db, logger)
	kontakSvc := di.InitKontakService(db, logger)

	server := httpapi.NewServer(db, storage, authSvc, kontakSvc, logger)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Info("server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Logging.Format == "text" {
		zcfg.Encoding = "console"
	}
	if level, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}
