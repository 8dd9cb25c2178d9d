package net

import (
	"context"
	"encoding/json"
	"time"

	"github.com/appditto/survey-push-server/models"
	guuid "github.com/google/uuid"
	"github.com/recws-org/recws"
	"k8s.io/klog/v2"
)

const responsesTopic = "notification_response"

type wsSubscribe struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
	Ack    bool   `json:"ack"`
	Id     string `json:"id"`
}

type TopicMessage struct {
	Topic   string                 `json:"topic"`
	Time    string                 `json:"time"`
	Message map[string]interface{} `json:"message"`
}

// DecodeResponse converts a topic message into a notification response.
// ok is false for other topics.
func DecodeResponse(msg TopicMessage) (*models.NotificationResponse, bool, error) {
	if msg.Topic != responsesTopic {
		return nil, false, nil
	}
	var deserialized models.NotificationResponse
	serialized, err := json.Marshal(msg.Message)
	if err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(serialized, &deserialized); err != nil {
		return nil, false, err
	}
	return &deserialized, true, nil
}

// StartResponsesWSClient follows an upstream feed of notification responses,
// reconnecting as needed, and forwards each one to responseChan until ctx is
// done
func StartResponsesWSClient(ctx context.Context, wsUrl string, responseChan *chan *models.NotificationResponse) {
	sentSubscribe := false
	ws := recws.RecConn{}
	subRequest := wsSubscribe{
		Action: "subscribe",
		Topic:  responsesTopic,
		Ack:    false,
		Id:     guuid.New().String(),
	}
	ws.Dial(wsUrl, nil)

	for {
		select {
		case <-ctx.Done():
			go ws.Close()
			klog.Infof("Websocket closed %s", ws.GetURL())
			return
		default:
			if !ws.IsConnected() {
				sentSubscribe = false
				klog.Infof("Websocket disconnected %s", ws.GetURL())
				time.Sleep(2 * time.Second)
				continue
			}

			if !sentSubscribe {
				if err := ws.WriteJSON(subRequest); err != nil {
					klog.Infof("Error sending subscribe request %s", ws.GetURL())
					time.Sleep(2 * time.Second)
					continue
				}
				sentSubscribe = true
			}

			var topicMessage TopicMessage
			if err := ws.ReadJSON(&topicMessage); err != nil {
				klog.Infof("Error: ReadJSON %s", ws.GetURL())
				sentSubscribe = false
				continue
			}

			response, ok, err := DecodeResponse(topicMessage)
			if err != nil {
				klog.Errorf("Error: decoding notification response %v", err)
				continue
			}
			if ok {
				select {
				case *responseChan <- response:
				case <-ctx.Done():
				}
			}
		}
	}
}
