// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input validation errors.
	ErrNoImageSelected = errors.New("no image selected")
	ErrNotAnImage      = errors.New("file is not an image")

	// Backend errors.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrEmptyResponse    = errors.New("empty response")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// User-facing messages.
const (
	MsgNotAnImage         = "Please upload an image file (PNG, JPG, JPEG)"
	MsgNoImageSelected    = "Please select an image first"
	MsgClassifyFailed     = "Failed to classify image. Please try again."
	MsgHistoryEmpty       = "No classifications yet. Start by uploading an image!"
	MsgCategoryStatsEmpty = "No data yet"
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for the user, or fallback when err
// carries none.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return fallback
}

// StatusError records a non-success HTTP response.
type StatusError struct {
	Endpoint   string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
