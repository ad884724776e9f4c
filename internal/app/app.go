package app

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"hotelbot/internal/config"
	"hotelbot/internal/handlers"
	"hotelbot/internal/logging"
)

// Build loads configuration and returns the SelectKnowledgeBase handler
// together with the logger it writes to.
func Build(ctx context.Context) (*handlers.SelectKnowledgeBaseHandler, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	// Uses the Lambda execution role when deployed
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, log, fmt.Errorf("load aws config: %w", err)
	}

	if cfg.NeedsSSM() {
		if err := cfg.ResolveSSM(ctx, ssm.NewFromConfig(awsCfg)); err != nil {
			return nil, log, err
		}
	}

	h, err := handlers.NewSelectKnowledgeBaseHandler(awsCfg, cfg, log)
	if err != nil {
		return nil, log, err
	}

	log.Info("handler ready",
		zap.Bool("dynamo_catalog", cfg.CatalogTable != ""),
		zap.Bool("s3_catalog", cfg.CatalogTable == "" && cfg.CatalogS3URI != ""),
		zap.Bool("notifications", cfg.ChangedTopicArn != ""),
	)
	return h, log, nil
}
