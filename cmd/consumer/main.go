package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/app"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("consumer exited", zap.Error(err))
	}
}
