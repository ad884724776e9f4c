package knowledgebase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the part of the DynamoDB client the catalog needs.
type DDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoCatalog reads knowledge bases from a table keyed by NameKey, the
// normalized spoken name. Aliases are stored as extra items pointing at the
// same KnowledgeBaseId.
type DynamoCatalog struct {
	ddb   DDBClient
	table string
}

func NewDynamoCatalog(ddb DDBClient, table string) *DynamoCatalog {
	return &DynamoCatalog{ddb: ddb, table: strings.TrimSpace(table)}
}

func (c *DynamoCatalog) Lookup(ctx context.Context, requested string) (*KnowledgeBase, error) {
	if c.table == "" {
		return nil, fmt.Errorf("missing KB_CATALOG_TABLE")
	}
	key := NormalizeName(requested)
	if key == "" {
		return nil, ErrUnknownKnowledgeBase
	}

	out, err := c.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key: map[string]ddbtypes.AttributeValue{
			"NameKey": &ddbtypes.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("catalog GetItem: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKnowledgeBase, requested)
	}

	var kb KnowledgeBase
	if err := attributevalue.UnmarshalMap(out.Item, &kb); err != nil {
		return nil, fmt.Errorf("catalog item decode: %w", err)
	}
	if strings.TrimSpace(kb.Name) == "" {
		kb.Name = requested
	}
	return checkEnabled(&kb)
}
