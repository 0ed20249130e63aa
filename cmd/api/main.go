package main

import (
	"os"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/app"
	"github.com/abangiyan/hongwei-crew-manager/internal/bootstrap"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// PORT, DATABASE_URL, REDIS_ADDR, KAFKA_BROKERS dibaca dari env,
	// saat dev cukup lewat file .env.
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	if err := app.BuildApp(r); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger.Info("starting crew manager api", zap.String("port", port))
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
