package services

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// PushService publishes family activity to an SNS topic so caregiver
// devices subscribed to it get notified. When SNS_FAMILY_TOPIC_ARN is
// unset the service is a no-op; meal logging must work without AWS.
type PushService struct {
	sns      *awssns.Client
	topicArn string
}

func NewPushService() (*PushService, error) {
	topicArn := os.Getenv("SNS_FAMILY_TOPIC_ARN")
	if topicArn == "" {
		return &PushService{}, nil
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		sns:      awssns.NewFromConfig(cfg),
		topicArn: topicArn,
	}, nil
}

func (p *PushService) NotifyFamily(familyID, kind, message string) {
	if p == nil || p.sns == nil || p.topicArn == "" {
		return
	}

	raw, _ := json.Marshal(map[string]string{
		"family_id": familyID,
		"kind":      kind,
		"message":   message,
	})
	_, _ = p.sns.Publish(context.TODO(), &awssns.PublishInput{
		TopicArn: aws.String(p.topicArn),
		Message:  aws.String(string(raw)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"family_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(familyID),
			},
		},
	})
}
