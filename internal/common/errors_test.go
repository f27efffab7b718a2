package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUserError(MsgClassifyFailed, cause)

	assert.Equal(t, MsgClassifyFailed+": connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, MsgNotAnImage, (&UserError{UserMessage: MsgNotAnImage}).Error())
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("classify: %w", NewUserError(MsgNotAnImage, ErrNotAnImage))

	assert.Equal(t, MsgNotAnImage, UserMessage(wrapped, "fallback"))
	assert.Equal(t, "fallback", UserMessage(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", UserMessage(nil, "fallback"))
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Endpoint: "/predict", StatusCode: 500, Body: "model not loaded"}
	assert.Equal(t, "/predict returned status 500: model not loaded", err.Error())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	bare := &StatusError{Endpoint: "/stats", StatusCode: 404}
	assert.Equal(t, "/stats returned status 404", bare.Error())
}
