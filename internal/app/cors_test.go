package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"rightscard.app", "*.rightscard.app", "localhost:*"}

	assert.True(t, originAllowed(patterns, "https://rightscard.app"))
	assert.True(t, originAllowed(patterns, "https://share.rightscard.app"))
	assert.True(t, originAllowed(patterns, "http://localhost:5173"))
	assert.False(t, originAllowed(patterns, "https://evil.example.com"))
	assert.False(t, originAllowed(patterns, "https://rightscard.app.evil.com"))
}

func TestOriginAllowedBareHost(t *testing.T) {
	assert.True(t, originAllowed([]string{"rightscard.app"}, "rightscard.app"))
	assert.False(t, originAllowed(nil, "https://rightscard.app"))
}
