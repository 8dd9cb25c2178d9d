package net

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, NewClient(5*time.Second).Timeout)
}
