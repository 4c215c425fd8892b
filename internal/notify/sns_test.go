package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	in  *sns.PublishInput
	err error
}

func (f *fakePublisher) Publish(
	_ context.Context,
	in *sns.PublishInput,
	_ ...func(*sns.Options),
) (*sns.PublishOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSNSNotifier_SendWarmupAlert(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	n := NewSNSNotifier(pub, "arn:aws:sns:us-east-1:123456789012:seller-alerts")

	require.NoError(t, n.SendWarmupAlert(context.Background(), testAlert(true)))
	require.NotNil(t, pub.in)

	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:seller-alerts", aws.ToString(pub.in.TopicArn))
	assert.Contains(t, aws.ToString(pub.in.Subject), "2 marketplace(s)")
	assert.Equal(t, "true", aws.ToString(pub.in.MessageAttributes["needs-reauth"].StringValue))

	var msg snsMessage
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(pub.in.Message)), &msg))
	assert.Equal(t, "token_warmup_failed", msg.Event)
	assert.True(t, msg.NeedsReauth)
	require.Len(t, msg.Failures, 2)
	assert.Equal(t, "UK", msg.Failures[0].Marketplace)
	assert.True(t, msg.Failures[0].TokenError)
}

func TestSNSNotifier_PublishError(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{err: errors.New("AuthorizationError")}
	n := NewSNSNotifier(pub, "arn:aws:sns:us-east-1:123456789012:seller-alerts")

	err := n.SendWarmupAlert(context.Background(), testAlert(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishing to sns topic")
}

var _ Notifier = (*SNSNotifier)(nil)
