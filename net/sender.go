package net

import (
	"context"

	"github.com/appditto/survey-push-server/models"
)

// PushSender delivers a single message to its recipient token
type PushSender interface {
	Send(ctx context.Context, msg *models.PushMessage) error
}

// RoutingSender sends Expo tokens through Expo and anything else through FCM,
// falling back to Expo when no FCM sender is configured
type RoutingSender struct {
	Expo PushSender
	Fcm  PushSender
}

func (r *RoutingSender) Send(ctx context.Context, msg *models.PushMessage) error {
	if r.Fcm != nil && !models.IsExpoToken(msg.To) {
		return r.Fcm.Send(ctx, msg)
	}
	return r.Expo.Send(ctx, msg)
}
