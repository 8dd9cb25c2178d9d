package notifications

import (
	"context"
	"errors"

	"github.com/appditto/survey-push-server/config"
)

// RegistrationStatus is the outcome of Register
type RegistrationStatus int

const (
	Registered RegistrationStatus = iota
	PermissionDenied
	NoDevice
)

func (s RegistrationStatus) String() string {
	switch s {
	case Registered:
		return "registered"
	case PermissionDenied:
		return "permission_denied"
	case NoDevice:
		return "no_device"
	}
	return "unknown"
}

func (s RegistrationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type PermissionStatus string

const (
	StatusGranted      PermissionStatus = "granted"
	StatusDenied       PermissionStatus = "denied"
	StatusUndetermined PermissionStatus = "undetermined"
)

const PlatformAndroid = "android"

type PermissionProvider interface {
	GetPermissions(ctx context.Context) (PermissionStatus, error)
	RequestPermissions(ctx context.Context) (PermissionStatus, error)
}

type TokenIssuer interface {
	GetPushToken(ctx context.Context) (string, error)
}

type ChannelConfigurer interface {
	SetNotificationChannel(ctx context.Context, id string, channel Channel) error
}

// Environment is everything registration needs from the device side
type Environment interface {
	IsDevice() bool
	Platform() string
	PermissionProvider
	TokenIssuer
	ChannelConfigurer
}

// Android notification channel
type Channel struct {
	Name             string `json:"name"`
	Importance       string `json:"importance"`
	VibrationPattern []int  `json:"vibration_pattern"`
	LightColor       string `json:"light_color"`
}

const DefaultChannelID = config.CHANNEL_ID

var DefaultChannel = Channel{
	Name:             config.CHANNEL_NAME,
	Importance:       "max",
	VibrationPattern: config.CHANNEL_VIBRATION_PATTERN,
	LightColor:       config.CHANNEL_LIGHT_COLOR,
}

type RegistrationResult struct {
	Status  RegistrationStatus `json:"status"`
	Token   string             `json:"token,omitempty"`
	Channel *Channel           `json:"channel,omitempty"`
}

// ErrEmptyToken means permission was granted but no token came with it
var ErrEmptyToken = errors.New("token issuer returned an empty token")

// ClientEnvironment answers from what a client reported in its register
// request. Nothing can be prompted server side, so RequestPermissions returns
// the reported status again.
type ClientEnvironment struct {
	Device     bool
	OS         string
	Permission PermissionStatus
	Token      string

	// Set by SetNotificationChannel, the client applies it
	ChannelID string
	Channel   *Channel
}

func (e *ClientEnvironment) IsDevice() bool   { return e.Device }
func (e *ClientEnvironment) Platform() string { return e.OS }

func (e *ClientEnvironment) GetPermissions(ctx context.Context) (PermissionStatus, error) {
	if e.Permission == "" {
		return StatusUndetermined, nil
	}
	return e.Permission, nil
}

func (e *ClientEnvironment) RequestPermissions(ctx context.Context) (PermissionStatus, error) {
	return e.GetPermissions(ctx)
}

func (e *ClientEnvironment) GetPushToken(ctx context.Context) (string, error) {
	if e.Token == "" {
		return "", ErrEmptyToken
	}
	return e.Token, nil
}

func (e *ClientEnvironment) SetNotificationChannel(ctx context.Context, id string, channel Channel) error {
	e.ChannelID = id
	e.Channel = &channel
	return nil
}

// HeadlessEnvironment is the server itself, never a physical device
type HeadlessEnvironment struct{}

func (HeadlessEnvironment) IsDevice() bool   { return false }
func (HeadlessEnvironment) Platform() string { return "server" }

func (HeadlessEnvironment) GetPermissions(ctx context.Context) (PermissionStatus, error) {
	return StatusUndetermined, nil
}

func (HeadlessEnvironment) RequestPermissions(ctx context.Context) (PermissionStatus, error) {
	return StatusDenied, nil
}

func (HeadlessEnvironment) GetPushToken(ctx context.Context) (string, error) {
	return "", ErrEmptyToken
}

func (HeadlessEnvironment) SetNotificationChannel(ctx context.Context, id string, channel Channel) error {
	return nil
}
