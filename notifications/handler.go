package notifications

// HandlerConfig controls how a notification is presented while the app is
// in the foreground. Handed to clients on registration.
type HandlerConfig struct {
	ShouldShowAlert bool `json:"should_show_alert"`
	ShouldPlaySound bool `json:"should_play_sound"`
	ShouldSetBadge  bool `json:"should_set_badge"`
}

var DefaultHandlerConfig = HandlerConfig{
	ShouldShowAlert: true,
	ShouldPlaySound: false,
	ShouldSetBadge:  true,
}
