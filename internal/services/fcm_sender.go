package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// FCMSender implements PushSender over the Firebase Cloud Messaging
// multicast API. Callers must keep batches at or under the FCM ceiling of
// 500 tokens per call.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender creates a new FCMSender
func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

// SendBatch sends one multicast message and aggregates FCM's per-token
// responses into the outcome
func (s *FCMSender) SendBatch(ctx context.Context, tokens []string, payload PushPayload) (*BatchOutcome, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("fcm multicast failed: %w", err)
	}

	return &BatchOutcome{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}, nil
}
