package knowledgebase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SwitchRequest names the session and what the caller asked for.
type SwitchRequest struct {
	SessionID string
	Requested string
}

// Switcher resolves the requested knowledge base and announces the change.
// The notifier is optional.
type Switcher struct {
	catalog  Catalog
	notifier *Notifier
	log      *zap.Logger
}

func NewSwitcher(catalog Catalog, notifier *Notifier, log *zap.Logger) *Switcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Switcher{catalog: catalog, notifier: notifier, log: log}
}

// Switch returns the selected knowledge base. A failed notification is
// logged and does not fail the switch.
func (s *Switcher) Switch(ctx context.Context, req SwitchRequest) (*KnowledgeBase, error) {
	kb, err := s.catalog.Lookup(ctx, req.Requested)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", req.Requested, err)
	}

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, req.SessionID, kb); err != nil {
			s.log.Warn("knowledge base change notification failed",
				zap.String("session_id", req.SessionID),
				zap.String("knowledge_base_id", kb.ID),
				zap.Error(err),
			)
		}
	}
	return kb, nil
}
