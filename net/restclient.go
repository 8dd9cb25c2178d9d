package net

import (
	"net/http"
	"time"

	"github.com/appditto/survey-push-server/config"
)

// HTTPClient is what gateway requests go through, tests replace Client with
// a mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var Client HTTPClient = NewClient(config.PUSH_HTTP_TIMEOUT)

// NewClient returns a client whose requests give up after timeout
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
