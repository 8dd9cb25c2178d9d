package dbmodels

// Every push token the installation has registered with
type PushToken struct {
	Base
	Token    string `json:"token" gorm:"uniqueIndex"`
	Platform string `json:"platform"`
}
