package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/goccy/go-json"

	"github.com/jadehome/seller-console/internal/metrics"
)

// Publisher is the subset of the SNS client used by SNSNotifier.
type Publisher interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier implements Notifier by publishing the alert as JSON to an SNS
// topic, for fan-out to email, chat or paging subscriptions.
type SNSNotifier struct {
	cli      Publisher
	topicARN string
}

// NewSNSNotifier creates a notifier publishing to topicARN.
func NewSNSNotifier(cli Publisher, topicARN string) *SNSNotifier {
	return &SNSNotifier{cli: cli, topicARN: topicARN}
}

type snsFailure struct {
	Scope       string `json:"scope"`
	Marketplace string `json:"marketplace"`
	Error       string `json:"error"`
	TokenError  bool   `json:"token_error"`
}

type snsMessage struct {
	Event       string       `json:"event"`
	At          time.Time    `json:"at"`
	NeedsReauth bool         `json:"needs_reauth"`
	Failures    []snsFailure `json:"failures"`
}

// SendWarmupAlert publishes the alert.
func (n *SNSNotifier) SendWarmupAlert(ctx context.Context, alert *WarmupAlert) error {
	msg := snsMessage{
		Event:       "token_warmup_failed",
		At:          alert.At.UTC(),
		NeedsReauth: alert.NeedsReauth(),
		Failures:    make([]snsFailure, 0, len(alert.Failures)),
	}
	for _, f := range alert.Failures {
		msg.Failures = append(msg.Failures, snsFailure(f))
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling sns message: %w", err)
	}

	subject := fmt.Sprintf("seller-console: token warm-up failed for %d marketplace(s)", len(alert.Failures))

	start := time.Now()
	_, err = n.cli.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"content-type": {DataType: aws.String("String"), StringValue: aws.String("application/json")},
			"needs-reauth": {DataType: aws.String("String"), StringValue: aws.String(fmt.Sprint(msg.NeedsReauth))},
		},
	})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())

	result := "success"
	if err != nil {
		result = "error"
		err = fmt.Errorf("publishing to sns topic %s: %w", n.topicARN, err)
	}
	metrics.NotificationsSentTotal.WithLabelValues(result).Inc()
	return err
}
