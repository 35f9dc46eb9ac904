package notification

import (
	"Zero-Desperdicio/domain"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Dispatcher delivers freshly generated notifications outside the app.
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, householdID string, notifications []domain.Notification) error
}

// RecipientResolver returns the e-mail address of a household.
type RecipientResolver func(ctx context.Context, householdID string) (string, error)

// SendMailFunc matches mailing.SendMail.
type SendMailFunc func(toEmail string, subject string, body string) error

type mailDispatcher struct {
	recipients RecipientResolver
	send       SendMailFunc
}

// NewMailDispatcher sends one HTML digest per generation run.
func NewMailDispatcher(recipients RecipientResolver, send SendMailFunc) Dispatcher {
	return &mailDispatcher{recipients: recipients, send: send}
}

func (d *mailDispatcher) Name() string { return "mail" }

func (d *mailDispatcher) Dispatch(ctx context.Context, householdID string, notifications []domain.Notification) error {
	to, err := d.recipients(ctx, householdID)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Zero Desperdício: %d %s", len(notifications), plural(len(notifications), "alerta", "alertas"))
	return d.send(to, subject, digestHTML(notifications))
}

func digestHTML(notifications []domain.Notification) string {
	var b strings.Builder
	b.WriteString("<h2>Itens perto de vencer</h2><ul>")
	for _, n := range notifications {
		fmt.Fprintf(&b, "<li><strong>%s</strong><br>%s<br><em>%s</em></li>",
			html.EscapeString(n.Title), html.EscapeString(n.Body), html.EscapeString(n.CTA))
	}
	b.WriteString("</ul>")
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// SNSPublisher is the subset of *sns.Client used for push delivery.
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsDispatcher struct {
	client   SNSPublisher
	topicARN string
}

// NewSNSDispatcher publishes every notification to an SNS topic, tagged
// with the household so subscriptions can filter on it.
func NewSNSDispatcher(client SNSPublisher, topicARN string) Dispatcher {
	return &snsDispatcher{client: client, topicARN: topicARN}
}

func (d *snsDispatcher) Name() string { return "sns" }

func (d *snsDispatcher) Dispatch(ctx context.Context, householdID string, notifications []domain.Notification) error {
	for _, n := range notifications {
		message, err := pushMessage(n)
		if err != nil {
			return err
		}
		_, err = d.client.Publish(ctx, &sns.PublishInput{
			TopicArn:         aws.String(d.topicARN),
			MessageStructure: aws.String("json"),
			Message:          aws.String(message),
			MessageAttributes: map[string]snstypes.MessageAttributeValue{
				"household_id": {DataType: aws.String("String"), StringValue: aws.String(householdID)},
				"type":         {DataType: aws.String("String"), StringValue: aws.String(string(n.Type))},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func pushMessage(n domain.Notification) (string, error) {
	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{
			"title": n.Title,
			"body":  n.Body,
		},
		"data": map[string]string{
			"notificationId": n.ID,
			"itemId":         n.ItemID,
			"cta":            n.CTA,
		},
	})
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(map[string]string{
		"default": n.Body,
		"GCM":     string(gcm),
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
