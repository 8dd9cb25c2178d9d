package mocks

import (
	"bytes"
	"io"
	"net/http"
)

// MockClient stands in for net.Client, responses come from GetDoFunc
type MockClient struct{}

var (
	GetDoFunc func(req *http.Request) (*http.Response, error)
)

func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	return GetDoFunc(req)
}

// Body wraps a canned response body
func Body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

var ExpoTicketResponse = `{"data":{"status":"ok","id":"XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX"}}`
