package net

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/appditto/survey-push-server/config"
	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/utils"
	"k8s.io/klog/v2"
)

// ExpoSender posts messages to the Expo push gateway. The gateway's ticket
// response is not inspected.
type ExpoSender struct {
	Url string
}

func (e *ExpoSender) url() string {
	if e.Url == "" {
		return config.EXPO_PUSH_URL
	}
	return e.Url
}

func (e *ExpoSender) Send(ctx context.Context, msg *models.PushMessage) error {
	serialized, err := json.Marshal(msg)
	if err != nil {
		klog.Errorf("Error marshalling push message %s", err)
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url(), bytes.NewReader(serialized))
	if err != nil {
		klog.Errorf("Error creating push request %s", err)
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "gzip, deflate")
	request.Header.Set("Content-Type", "application/json")

	resp, err := Client.Do(request)
	if err != nil {
		klog.Errorf("Error sending push to %s: %s", utils.TokenFingerprint(msg.To), err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	klog.V(3).Infof("Push gateway answered %d for %s", resp.StatusCode, utils.TokenFingerprint(msg.To))
	return nil
}
