package models

// A user interacted with a delivered notification
type NotificationResponse struct {
	ActionIdentifier string                 `json:"action_identifier" mapstructure:"action_identifier"`
	Title            string                 `json:"title" mapstructure:"title"`
	Body             string                 `json:"body" mapstructure:"body"`
	Data             map[string]interface{} `json:"data,omitempty" mapstructure:"data,omitempty"`
}

type NotificationResponseRequest struct {
	Action               string `json:"action" mapstructure:"action"`
	NotificationResponse `mapstructure:",squash"`
}
