package net

import (
	"context"

	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/utils"
	"github.com/appleboy/go-fcm"
	"k8s.io/klog/v2"
)

// FcmSender delivers to raw FCM registration tokens
type FcmSender struct {
	Client *fcm.Client
}

func fcmMessage(msg *models.PushMessage) *fcm.Message {
	return &fcm.Message{
		To:       msg.To,
		Priority: "high",
		Data:     msg.Data,
		Notification: &fcm.Notification{
			Title: msg.Title,
			Body:  msg.Body,
			Sound: msg.Sound,
		},
	}
}

func (f *FcmSender) Send(ctx context.Context, msg *models.PushMessage) error {
	_, err := f.Client.SendWithContext(ctx, fcmMessage(msg))
	if err != nil {
		klog.Errorf("Error sending FCM notification to %s: %s", utils.TokenFingerprint(msg.To), err)
		return err
	}
	return nil
}
