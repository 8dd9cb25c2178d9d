package models

type SendRequest struct {
	Action string                 `json:"action" mapstructure:"action"`
	Title  string                 `json:"title" mapstructure:"title"`
	Body   string                 `json:"body" mapstructure:"body"`
	Data   map[string]interface{} `json:"data,omitempty" mapstructure:"data,omitempty"`
}
