package models

// register request, the client reports what its device told it
type RegisterRequest struct {
	Action           string `json:"action" mapstructure:"action"`
	IsDevice         bool   `json:"is_device" mapstructure:"is_device"`
	Platform         string `json:"platform" mapstructure:"platform"`
	PermissionStatus string `json:"permission_status" mapstructure:"permission_status"`
	PushToken        string `json:"push_token,omitempty" mapstructure:"push_token,omitempty"`
}
