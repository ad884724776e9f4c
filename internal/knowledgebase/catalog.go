package knowledgebase

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnknownKnowledgeBase  = errors.New("unknown knowledge base")
	ErrKnowledgeBaseDisabled = errors.New("knowledge base disabled")
)

// KnowledgeBase is one selectable entry in the catalog.
type KnowledgeBase struct {
	ID      string   `json:"id" dynamodbav:"KnowledgeBaseId"`
	Name    string   `json:"name" dynamodbav:"DisplayName"`
	Aliases []string `json:"aliases,omitempty" dynamodbav:"Aliases,omitempty"`
	Enabled bool     `json:"enabled" dynamodbav:"Enabled"`
}

// Catalog resolves what the caller said into a knowledge base.
type Catalog interface {
	Lookup(ctx context.Context, requested string) (*KnowledgeBase, error)
}

// NormalizeName lowercases and collapses whitespace so "Room  Service" and
// "room service" match.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func checkEnabled(kb *KnowledgeBase) (*KnowledgeBase, error) {
	if !kb.Enabled {
		return nil, ErrKnowledgeBaseDisabled
	}
	return kb, nil
}
