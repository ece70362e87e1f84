package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", ParseBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", ParseBearerToken("bearer   abc123  "))
	assert.Equal(t, "", ParseBearerToken("Basic abc123"))
	assert.Equal(t, "", ParseBearerToken("abc123"))
	assert.Equal(t, "", ParseBearerToken(""))
}

func TestWebhookAuthorized(t *testing.T) {
	accepted := []string{"secret-a", "secret-b"}

	assert.True(t, WebhookAuthorized("secret-a", "", accepted))
	assert.True(t, WebhookAuthorized("", "Bearer secret-b", accepted))
	assert.True(t, WebhookAuthorized("salah", "Bearer secret-a", accepted))

	assert.False(t, WebhookAuthorized("salah", "Bearer salah", accepted))
	assert.False(t, WebhookAuthorized("", "", accepted))
	assert.False(t, WebhookAuthorized("", "", nil))
	// secret kosong tidak boleh match walau list berisi string kosong
	assert.False(t, WebhookAuthorized("", "", []string{""}))
}
