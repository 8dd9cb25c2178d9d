package models

import "strings"

// Envelope posted to the push gateway
type PushMessage struct {
	To    string                 `json:"to"`
	Sound string                 `json:"sound"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data"`
}

func NewPushMessage(to string, title string, body string, data map[string]interface{}) *PushMessage {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &PushMessage{
		To:    to,
		Sound: "default",
		Title: title,
		Body:  body,
		Data:  data,
	}
}

// IsExpoToken reports whether the token was issued by Expo rather than raw FCM
func IsExpoToken(token string) bool {
	return strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")
}
