package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/spf13/viper"
)

const ssmPrefix = "ssm:"

// Config holds the Lambda's environment settings.
type Config struct {
	LogLevel          string
	CatalogTable      string
	CatalogS3URI      string
	ChangedTopicArn   string
	KnowledgeBaseSlot string // elicitation prompt for the knowledgeBase slot
}

type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")

	binds := map[string]string{
		"log_level":            "LOG_LEVEL",
		"kb_catalog_table":     "KB_CATALOG_TABLE",
		"kb_catalog_s3_uri":    "KB_CATALOG_S3_URI",
		"kb_changed_topic_arn": "KB_CHANGED_TOPIC_ARN",
		"kb_slot_prompt":       "KB_SLOT_PROMPT",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		LogLevel:          strings.TrimSpace(v.GetString("log_level")),
		CatalogTable:      strings.TrimSpace(v.GetString("kb_catalog_table")),
		CatalogS3URI:      strings.TrimSpace(v.GetString("kb_catalog_s3_uri")),
		ChangedTopicArn:   strings.TrimSpace(v.GetString("kb_changed_topic_arn")),
		KnowledgeBaseSlot: v.GetString("kb_slot_prompt"),
	}
	if cfg.CatalogS3URI != "" && !strings.HasPrefix(cfg.CatalogS3URI, ssmPrefix) && !strings.HasPrefix(cfg.CatalogS3URI, "s3://") {
		return nil, fmt.Errorf("KB_CATALOG_S3_URI must be an s3:// uri, got %q", cfg.CatalogS3URI)
	}
	return cfg, nil
}

// NeedsSSM reports whether any value is an ssm: reference.
func (c *Config) NeedsSSM() bool {
	for _, p := range c.fields() {
		if strings.HasPrefix(*p, ssmPrefix) {
			return true
		}
	}
	return false
}

// ResolveSSM replaces every "ssm:<name>" value with the decrypted parameter.
func (c *Config) ResolveSSM(ctx context.Context, client ParameterGetter) error {
	for _, p := range c.fields() {
		name, ok := strings.CutPrefix(*p, ssmPrefix)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("empty ssm parameter reference")
		}

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("ssm get parameter %s: %w", name, err)
		}
		if out.Parameter == nil {
			return fmt.Errorf("ssm parameter %s has no value", name)
		}
		*p = strings.TrimSpace(aws.ToString(out.Parameter.Value))
	}
	return nil
}

func (c *Config) fields() []*string {
	return []*string{&c.CatalogTable, &c.CatalogS3URI, &c.ChangedTopicArn, &c.KnowledgeBaseSlot}
}
