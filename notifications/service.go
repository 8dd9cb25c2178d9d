package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/utils"
	"k8s.io/klog/v2"
)

// ErrNoPushToken is returned by Send when no token is stored and
// registration did not produce one
var ErrNoPushToken = errors.New("no push token available")

type TokenStore interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
}

// TokenRecorder keeps a history of registered tokens
type TokenRecorder interface {
	AddOrUpdateToken(token string, platform string) error
}

type Sender interface {
	Send(ctx context.Context, msg *models.PushMessage) error
}

type Options struct {
	Store    TokenStore
	Sender   Sender
	Recorder TokenRecorder
	// Used when Send has to register on its own, defaults to HeadlessEnvironment
	Environment Environment
	Handler     HandlerConfig
}

type Service struct {
	store     TokenStore
	sender    Sender
	recorder  TokenRecorder
	env       Environment
	handler   HandlerConfig
	listeners *Listeners
}

func NewService(opts Options) *Service {
	env := opts.Environment
	if env == nil {
		env = HeadlessEnvironment{}
	}
	return &Service{
		store:     opts.Store,
		sender:    opts.Sender,
		recorder:  opts.Recorder,
		env:       env,
		handler:   opts.Handler,
		listeners: &Listeners{},
	}
}

func (s *Service) HandlerConfig() HandlerConfig {
	return s.handler
}

// Register checks the device and its permission, then stores the token it
// issues. Devices that cannot receive pushes are reported through the status,
// not as errors. A nil env uses the service's own environment.
func (s *Service) Register(ctx context.Context, env Environment) (RegistrationResult, error) {
	if env == nil {
		env = s.env
	}
	if !env.IsDevice() {
		klog.Infof("Must use physical device for push notifications")
		return RegistrationResult{Status: NoDevice}, nil
	}

	status, err := env.GetPermissions(ctx)
	if err != nil {
		return RegistrationResult{}, err
	}
	if status != StatusGranted {
		status, err = env.RequestPermissions(ctx)
		if err != nil {
			return RegistrationResult{}, err
		}
	}
	if status != StatusGranted {
		klog.Infof("Failed to get push token for push notification, permission is %s", status)
		return RegistrationResult{Status: PermissionDenied}, nil
	}

	token, err := env.GetPushToken(ctx)
	if err != nil {
		return RegistrationResult{}, err
	}
	if err := s.store.Write(ctx, token); err != nil {
		return RegistrationResult{}, fmt.Errorf("storing push token: %w", err)
	}
	if s.recorder != nil {
		if err := s.recorder.AddOrUpdateToken(token, env.Platform()); err != nil {
			klog.Errorf("Error recording push token %s: %v", utils.TokenFingerprint(token), err)
		}
	}
	klog.Infof("Registered push token %s on %s", utils.TokenFingerprint(token), env.Platform())

	result := RegistrationResult{Status: Registered, Token: token}
	if env.Platform() == PlatformAndroid {
		channel := DefaultChannel
		if err := env.SetNotificationChannel(ctx, DefaultChannelID, channel); err != nil {
			klog.Errorf("Error configuring notification channel: %v", err)
		} else {
			result.Channel = &channel
		}
	}
	return result, nil
}

// Send pushes a message to the stored token, registering first when there is
// none. Gateway responses are not checked.
func (s *Service) Send(ctx context.Context, title string, body string, data map[string]interface{}) error {
	token, err := s.store.Read(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		result, err := s.Register(ctx, nil)
		if err != nil {
			return err
		}
		if result.Status != Registered {
			return fmt.Errorf("%w: %s", ErrNoPushToken, result.Status)
		}
		token = result.Token
	}
	return s.sender.Send(ctx, models.NewPushMessage(token, title, body, data))
}

func (s *Service) AddListener(cb ResponseCallback) *Subscription {
	return s.listeners.Add(cb)
}

func (s *Service) RemoveListener(sub *Subscription) {
	s.listeners.Remove(sub)
}

func (s *Service) Listeners() int {
	return s.listeners.Len()
}

// DispatchResponse hands a notification response to every listener
func (s *Service) DispatchResponse(response *models.NotificationResponse) {
	s.listeners.Dispatch(response)
}
