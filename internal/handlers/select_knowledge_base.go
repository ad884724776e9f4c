package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"hotelbot/internal/config"
	"hotelbot/internal/knowledgebase"
	"hotelbot/internal/lexv2"
	"hotelbot/internal/logging"
	"hotelbot/internal/slots"
)

const (
	SlotKnowledgeBase = "knowledgeBase"

	KnowledgeBaseChanged     = "KnowledgeBase-Changed"
	KnowledgeBaseChangeError = "KnowledgeBase-Change-Error"

	attrKnowledgeBase = "knowledgeBase"
	attrPromptID      = "prompt_id"
	attrPrompt        = "prompt"
	attrFirstName     = "first_name"
)

var requiredSlots = []string{SlotKnowledgeBase}

var responseTypes = map[string]string{
	KnowledgeBaseChanged: `
        Switched to the {knowledgeBase} knowledge base.
        `,
	KnowledgeBaseChangeError: `
        I'm sorry, I was not able to change the knowledge base for you.
        `,
}

var ErrMissingIntentName = errors.New("event has no intent name")

type KnowledgeBaseSwitcher interface {
	Switch(ctx context.Context, req knowledgebase.SwitchRequest) (*knowledgebase.KnowledgeBase, error)
}

// SelectKnowledgeBaseHandler fulfills the SelectKnowledgeBase intent. With a
// nil switcher the selection itself is a no-op and the turn is only confirmed.
type SelectKnowledgeBaseHandler struct {
	switcher  KnowledgeBaseSwitcher
	confirmer slots.Confirmer
	log       *zap.Logger
}

// NewSelectKnowledgeBaseHandler wires the catalog, notifier and prompts from cfg.
// A DynamoDB catalog takes precedence over an S3 manifest; with neither the
// handler runs without a switcher.
func NewSelectKnowledgeBaseHandler(awsCfg aws.Config, cfg *config.Config, log *zap.Logger) (*SelectKnowledgeBaseHandler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var catalog knowledgebase.Catalog
	switch {
	case cfg.CatalogTable != "":
		catalog = knowledgebase.NewDynamoCatalog(dynamodb.NewFromConfig(awsCfg), cfg.CatalogTable)
	case cfg.CatalogS3URI != "":
		c, err := knowledgebase.NewS3Catalog(s3.NewFromConfig(awsCfg), cfg.CatalogS3URI)
		if err != nil {
			return nil, fmt.Errorf("s3 catalog: %w", err)
		}
		catalog = c
	}

	var switcher KnowledgeBaseSwitcher
	if catalog != nil {
		var notifier *knowledgebase.Notifier
		if cfg.ChangedTopicArn != "" {
			notifier = knowledgebase.NewNotifier(sns.NewFromConfig(awsCfg), cfg.ChangedTopicArn)
		}
		switcher = knowledgebase.NewSwitcher(catalog, notifier, log)
	} else {
		log.Info("no knowledge base catalog configured; selection is not applied")
	}

	prompts := map[string]string{}
	if cfg.KnowledgeBaseSlot != "" {
		prompts[SlotKnowledgeBase] = cfg.KnowledgeBaseSlot
	}

	return newSelectKnowledgeBaseHandler(switcher, slots.Confirmer{Prompts: prompts}, log), nil
}

func newSelectKnowledgeBaseHandler(switcher KnowledgeBaseSwitcher, confirmer slots.Confirmer, log *zap.Logger) *SelectKnowledgeBaseHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SelectKnowledgeBaseHandler{switcher: switcher, confirmer: confirmer, log: log}
}

func (h *SelectKnowledgeBaseHandler) Handle(ctx context.Context, ev lexv2.Event) (lexv2.Response, error) {
	intent := ev.SessionState.Intent
	if intent.Name == "" {
		return lexv2.Response{}, ErrMissingIntentName
	}

	log := logging.FromLambdaContext(ctx, h.log).With(zap.String("intent", intent.Name))
	log.Info("lex event", zap.Reflect("event", ev))

	attrs := ev.SessionState.SessionAttributes
	if attrs == nil {
		attrs = map[string]string{}
		ev.SessionState.SessionAttributes = attrs
	}

	// a new selection is being made, drop the old one
	delete(attrs, attrKnowledgeBase)

	if resp := h.confirmer.ConfirmRequiredSlots(ev, requiredSlots); resp != nil {
		log.Info("eliciting slot", zap.String("slot", resp.SessionState.DialogAction.SlotToElicit))
		return *resp, nil
	}

	promptID := KnowledgeBaseChanged
	if h.switcher != nil {
		kb, err := h.switcher.Switch(ctx, knowledgebase.SwitchRequest{
			SessionID: ev.SessionID,
			Requested: intent.SlotValue(SlotKnowledgeBase),
		})
		if err != nil {
			log.Warn("knowledge base switch failed", zap.Error(err))
			promptID = KnowledgeBaseChangeError
		} else {
			attrs[attrKnowledgeBase] = kb.Name
		}
	}

	attrs[attrPromptID] = promptID
	template, ok := responseTypes[promptID]
	if !ok {
		template = promptID + " not found"
	}
	template = slots.RemoveWhitespace(template)
	attrs[attrPrompt] = template

	data := map[string]string{}
	if firstName := attrs[attrFirstName]; firstName != "" {
		template = "{first_name}, " + template
		data[attrFirstName] = firstName
	}

	data[attrKnowledgeBase] = "Error"
	if v, ok := attrs[attrKnowledgeBase]; ok {
		data[attrKnowledgeBase] = v
	}

	text := slots.BuildResponse(template, data)
	if ev.IsVoice() {
		text = "<speak>" + text + "</speak>"
	}

	intent.State = lexv2.IntentStateFulfilled
	resp := lexv2.Close(
		intent,
		ev.SessionState.ActiveContexts,
		attrs,
		lexv2.FormatMessageArray(text, lexv2.ContentTypePlainText),
		ev.RequestAttributes,
	)

	log.Info("lex response", zap.String("prompt_id", promptID), zap.Reflect("response", resp))
	return resp, nil
}
