package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnconfiguredClient(t *testing.T) {
	err := Initialize(Config{})
	assert.Error(t, err)
	assert.Nil(t, Client())
	assert.Error(t, HealthCheck(context.Background()))
	assert.NoError(t, Close())

	// Initialize runs once; a second call reports the first outcome.
	assert.Equal(t, err, Initialize(Config{URL: "redis://localhost:6379"}))
}
