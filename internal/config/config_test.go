package config

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	params map[string]string
	calls  []string
}

func (f *fakeSSM) GetParameter(ctx context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	name := aws.ToString(in.Name)
	f.calls = append(f.calls, name)
	v, ok := f.params[name]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{Parameter: &ssmtypes.Parameter{Name: in.Name, Value: aws.String(v)}}, nil
}

func TestLoad_Defaults(t *testing.T) {
	for _, env := range []string{"LOG_LEVEL", "KB_CATALOG_TABLE", "KB_CATALOG_S3_URI", "KB_CHANGED_TOPIC_ARN", "KB_SLOT_PROMPT"} {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CatalogTable)
	assert.False(t, cfg.NeedsSSM())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KB_CATALOG_TABLE", " kb-catalog ")
	t.Setenv("KB_CATALOG_S3_URI", "s3://bucket/kb.json")
	t.Setenv("KB_CHANGED_TOPIC_ARN", "arn:aws:sns:us-east-1:123:kb")
	t.Setenv("KB_SLOT_PROMPT", "Which knowledge base?")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:          "debug",
		CatalogTable:      "kb-catalog",
		CatalogS3URI:      "s3://bucket/kb.json",
		ChangedTopicArn:   "arn:aws:sns:us-east-1:123:kb",
		KnowledgeBaseSlot: "Which knowledge base?",
	}, cfg)
}

func TestLoad_RejectsBadS3URI(t *testing.T) {
	t.Setenv("KB_CATALOG_S3_URI", "https://bucket/kb.json")
	_, err := Load()
	assert.Error(t, err)
}

func TestResolveSSM(t *testing.T) {
	cfg := &Config{
		CatalogTable:    "ssm:/hotelbot/kb-table",
		ChangedTopicArn: "arn:plain",
	}
	require.True(t, cfg.NeedsSSM())

	f := &fakeSSM{params: map[string]string{"/hotelbot/kb-table": "kb-catalog-prod"}}
	require.NoError(t, cfg.ResolveSSM(context.Background(), f))

	assert.Equal(t, "kb-catalog-prod", cfg.CatalogTable)
	assert.Equal(t, "arn:plain", cfg.ChangedTopicArn)
	assert.Equal(t, []string{"/hotelbot/kb-table"}, f.calls)
	assert.False(t, cfg.NeedsSSM())
}

func TestResolveSSM_Errors(t *testing.T) {
	cfg := &Config{ChangedTopicArn: "ssm:/missing"}
	assert.Error(t, cfg.ResolveSSM(context.Background(), &fakeSSM{}))

	cfg = &Config{ChangedTopicArn: "ssm: "}
	assert.Error(t, cfg.ResolveSSM(context.Background(), &fakeSSM{}))
}
