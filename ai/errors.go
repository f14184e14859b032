package ai

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindAuthentication
)

func (k ErrorKind) String() string {
	if k == KindAuthentication {
		return "authentication"
	}
	return "other"
}

// ServiceError is a failure reported by (or on the way to) the remote service.
// StatusCode is zero when no HTTP response was received.
type ServiceError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Classify maps any failure to the two kinds the flows report.
func Classify(err error) ErrorKind {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.StatusCode == http.StatusUnauthorized {
		return KindAuthentication
	}
	return KindOther
}

// ErrorMessage returns the text the service gave for a failure.
func ErrorMessage(err error) string {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return serviceErr.Message
	}
	return err.Error()
}

func wrapOpenAiError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error()
		}
		return &ServiceError{Service: "openai", StatusCode: apiErr.HTTPStatusCode, Message: message, Err: err}
	}

	var requestErr *openai.RequestError
	if errors.As(err, &requestErr) {
		return &ServiceError{Service: "openai", StatusCode: requestErr.HTTPStatusCode, Message: requestErr.Error(), Err: err}
	}

	return &ServiceError{Service: "openai", Message: err.Error(), Err: err}
}

func wrapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &ServiceError{Service: "anthropic", StatusCode: apiErr.StatusCode, Message: apiErr.Error(), Err: err}
	}

	return &ServiceError{Service: "anthropic", Message: err.Error(), Err: err}
}
