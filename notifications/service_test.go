package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/appditto/survey-push-server/models"
	"github.com/stretchr/testify/assert"
)

type memoryStore struct {
	token   string
	readErr error
	writes  int
}

func (m *memoryStore) Read(ctx context.Context) (string, error) {
	return m.token, m.readErr
}

func (m *memoryStore) Write(ctx context.Context, token string) error {
	m.writes++
	m.token = token
	return nil
}

type recordingSender struct {
	sent []*models.PushMessage
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg *models.PushMessage) error {
	r.sent = append(r.sent, msg)
	return r.err
}

type recordingRecorder struct {
	tokens map[string]string
}

func (r *recordingRecorder) AddOrUpdateToken(token string, platform string) error {
	if r.tokens == nil {
		r.tokens = map[string]string{}
	}
	r.tokens[token] = platform
	return nil
}

// Counts every call so tests can check nothing was prompted
type fakeEnvironment struct {
	ClientEnvironment
	getCalls     int
	requestCalls int
	grantOnAsk   bool
}

func (f *fakeEnvironment) GetPermissions(ctx context.Context) (PermissionStatus, error) {
	f.getCalls++
	return f.ClientEnvironment.GetPermissions(ctx)
}

func (f *fakeEnvironment) RequestPermissions(ctx context.Context) (PermissionStatus, error) {
	f.requestCalls++
	if f.grantOnAsk {
		return StatusGranted, nil
	}
	return f.ClientEnvironment.RequestPermissions(ctx)
}

func newTestService(store *memoryStore, sender *recordingSender) *Service {
	return NewService(Options{
		Store:   store,
		Sender:  sender,
		Handler: DefaultHandlerConfig,
	})
}

func TestRegisterOnNonDeviceSkipsPrompt(t *testing.T) {
	store := &memoryStore{}
	s := newTestService(store, &recordingSender{})
	env := &fakeEnvironment{ClientEnvironment: ClientEnvironment{Device: false, Token: "ExponentPushToken[abc]"}}

	result, err := s.Register(context.Background(), env)
	assert.Nil(t, err)
	assert.Equal(t, NoDevice, result.Status)
	assert.Equal(t, "", result.Token)
	assert.Equal(t, 0, env.getCalls)
	assert.Equal(t, 0, env.requestCalls)
	assert.Equal(t, 0, store.writes)
}

func TestRegisterPermissionDenied(t *testing.T) {
	store := &memoryStore{}
	s := newTestService(store, &recordingSender{})
	env := &fakeEnvironment{ClientEnvironment: ClientEnvironment{Device: true, Permission: StatusDenied, Token: "ExponentPushToken[abc]"}}

	result, err := s.Register(context.Background(), env)
	assert.Nil(t, err)
	assert.Equal(t, PermissionDenied, result.Status)
	assert.Equal(t, 1, env.getCalls)
	assert.Equal(t, 1, env.requestCalls)
	assert.Equal(t, 0, store.writes)
}

func TestRegisterAlreadyGrantedDoesNotAsk(t *testing.T) {
	store := &memoryStore{}
	recorder := &recordingRecorder{}
	s := NewService(Options{Store: store, Sender: &recordingSender{}, Recorder: recorder})
	env := &fakeEnvironment{ClientEnvironment: ClientEnvironment{Device: true, OS: "ios", Permission: StatusGranted, Token: "ExponentPushToken[abc]"}}

	result, err := s.Register(context.Background(), env)
	assert.Nil(t, err)
	assert.Equal(t, Registered, result.Status)
	assert.Equal(t, "ExponentPushToken[abc]", result.Token)
	assert.Nil(t, result.Channel)
	assert.Equal(t, 0, env.requestCalls)
	assert.Equal(t, "ExponentPushToken[abc]", store.token)
	assert.Equal(t, "ios", recorder.tokens["ExponentPushToken[abc]"])
}

func TestRegisterGrantedOnRequest(t *testing.T) {
	store := &memoryStore{}
	s := newTestService(store, &recordingSender{})
	env := &fakeEnvironment{
		ClientEnvironment: ClientEnvironment{Device: true, OS: "ios", Permission: StatusUndetermined, Token: "ExponentPushToken[abc]"},
		grantOnAsk:        true,
	}

	result, err := s.Register(context.Background(), env)
	assert.Nil(t, err)
	assert.Equal(t, Registered, result.Status)
	assert.Equal(t, 1, env.requestCalls)
}

func TestRegisterAndroidConfiguresChannel(t *testing.T) {
	s := newTestService(&memoryStore{}, &recordingSender{})
	env := &ClientEnvironment{Device: true, OS: "android", Permission: StatusGranted, Token: "ExponentPushToken[abc]"}

	result, err := s.Register(context.Background(), env)
	assert.Nil(t, err)
	assert.Equal(t, Registered, result.Status)
	assert.Equal(t, "default", env.ChannelID)
	assert.Equal(t, &DefaultChannel, env.Channel)
	assert.Equal(t, "default", result.Channel.Name)
	assert.Equal(t, "max", result.Channel.Importance)
	assert.Equal(t, []int{0, 250, 250, 250}, result.Channel.VibrationPattern)
	assert.Equal(t, "#FF231F7C", result.Channel.LightColor)
}

func TestRegisterOverwritesStoredToken(t *testing.T) {
	store := &memoryStore{token: "ExponentPushToken[old]"}
	s := newTestService(store, &recordingSender{})

	_, err := s.Register(context.Background(), &ClientEnvironment{Device: true, Permission: StatusGranted, Token: "ExponentPushToken[new]"})
	assert.Nil(t, err)
	assert.Equal(t, "ExponentPushToken[new]", store.token)
}

func TestRegisterWithoutIssuedToken(t *testing.T) {
	s := newTestService(&memoryStore{}, &recordingSender{})

	_, err := s.Register(context.Background(), &ClientEnvironment{Device: true, Permission: StatusGranted})
	assert.Equal(t, ErrEmptyToken, err)
}

func TestSendUsesStoredToken(t *testing.T) {
	sender := &recordingSender{}
	s := newTestService(&memoryStore{token: "ExponentPushToken[abc]"}, sender)

	err := s.Send(context.Background(), "Title", "Body", map[string]interface{}{"screen": "survey"})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(sender.sent))
	msg := sender.sent[0]
	assert.Equal(t, "ExponentPushToken[abc]", msg.To)
	assert.Equal(t, "default", msg.Sound)
	assert.Equal(t, "Title", msg.Title)
	assert.Equal(t, "Body", msg.Body)
	assert.Equal(t, "survey", msg.Data["screen"])
}

func TestSendDefaultsData(t *testing.T) {
	sender := &recordingSender{}
	s := newTestService(&memoryStore{token: "ExponentPushToken[abc]"}, sender)

	assert.Nil(t, s.Send(context.Background(), "Title", "Body", nil))
	assert.Equal(t, map[string]interface{}{}, sender.sent[0].Data)
}

func TestSendRegistersWhenNoToken(t *testing.T) {
	store := &memoryStore{}
	sender := &recordingSender{}
	s := NewService(Options{
		Store:       store,
		Sender:      sender,
		Environment: &ClientEnvironment{Device: true, Permission: StatusGranted, Token: "ExponentPushToken[fresh]"},
	})

	assert.Nil(t, s.Send(context.Background(), "Title", "Body", nil))
	assert.Equal(t, "ExponentPushToken[fresh]", sender.sent[0].To)
	assert.Equal(t, "ExponentPushToken[fresh]", store.token)
}

func TestSendWithoutAnyToken(t *testing.T) {
	sender := &recordingSender{}
	s := newTestService(&memoryStore{}, sender)

	err := s.Send(context.Background(), "Title", "Body", nil)
	assert.True(t, errors.Is(err, ErrNoPushToken))
	assert.Equal(t, "no push token available: no_device", err.Error())
	assert.Equal(t, 0, len(sender.sent))
}

func TestSendPropagatesErrors(t *testing.T) {
	readFailure := errors.New("storage unavailable")
	s := newTestService(&memoryStore{readErr: readFailure}, &recordingSender{})
	assert.Equal(t, readFailure, s.Send(context.Background(), "Title", "Body", nil))

	sendFailure := errors.New("network down")
	s = newTestService(&memoryStore{token: "ExponentPushToken[abc]"}, &recordingSender{err: sendFailure})
	assert.Equal(t, sendFailure, s.Send(context.Background(), "Title", "Body", nil))
}

func TestListeners(t *testing.T) {
	s := newTestService(&memoryStore{}, &recordingSender{})
	var order []string

	first := s.AddListener(func(r *models.NotificationResponse) { order = append(order, "first:"+r.Title) })
	second := s.AddListener(func(r *models.NotificationResponse) { order = append(order, "second:"+r.Title) })
	assert.Equal(t, 2, s.Listeners())

	s.DispatchResponse(&models.NotificationResponse{Title: "a"})
	assert.Equal(t, []string{"first:a", "second:a"}, order)

	s.RemoveListener(first)
	s.DispatchResponse(&models.NotificationResponse{Title: "b"})
	assert.Equal(t, []string{"first:a", "second:a", "second:b"}, order)

	// Removing twice or nil is harmless
	s.RemoveListener(first)
	s.RemoveListener(nil)
	s.RemoveListener(second)
	assert.Equal(t, 0, s.Listeners())
}

func TestRegistrationStatusText(t *testing.T) {
	text, _ := PermissionDenied.MarshalText()
	assert.Equal(t, "permission_denied", string(text))
	assert.Equal(t, "registered", Registered.String())
	assert.Equal(t, "no_device", NoDevice.String())
}
