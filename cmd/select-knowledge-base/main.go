package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"hotelbot/internal/app"
)

func main() {
	h, logger, err := app.Build(context.Background())
	if err != nil {
		if logger != nil {
			logger.Fatal("startup failed", zap.Error(err))
		}
		log.Fatalf("startup failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	lambda.Start(h.Handle)
}
