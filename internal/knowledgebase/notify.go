package knowledgebase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const EventTypeChanged = "KnowledgeBaseChanged"

// SNSClient is the part of the SNS client the notifier needs.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// ChangeEvent is the SNS message body sent after a successful switch.
type ChangeEvent struct {
	SessionID       string `json:"sessionId"`
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	KnowledgeBase   string `json:"knowledgeBase"`
	ChangedAt       string `json:"changedAt"`
}

// Notifier publishes ChangeEvents to one SNS topic.
type Notifier struct {
	sns      SNSClient
	topicArn string
	now      func() time.Time
}

func NewNotifier(client SNSClient, topicArn string) *Notifier {
	return &Notifier{sns: client, topicArn: strings.TrimSpace(topicArn), now: time.Now}
}

func (n *Notifier) Publish(ctx context.Context, sessionID string, kb *KnowledgeBase) error {
	if n.topicArn == "" {
		return fmt.Errorf("missing KB_CHANGED_TOPIC_ARN")
	}

	body, err := json.Marshal(ChangeEvent{
		SessionID:       sessionID,
		KnowledgeBaseID: kb.ID,
		KnowledgeBase:   kb.Name,
		ChangedAt:       n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = n.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Subject:  aws.String("Knowledge base changed"),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"eventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(EventTypeChanged),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
