package storage

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	ErrAuthFailed       = errors.New("authentication failed")
	ErrConnFailed       = errors.New("connection failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// OpError is a failed backend operation. It matches both its class (one of the
// sentinel errors above, when known) and the underlying error.
type OpError struct {
	Backend string
	Op      string
	Kind    error
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Backend, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// WrapError adds context to an error and classifies it
func WrapError(backend, operation string, err error) error {
	return &OpError{
		Backend: backend,
		Op:      operation,
		Kind:    Classify(err),
		Err:     err,
	}
}

// Classify maps an error to one of the sentinel errors, or nil when unknown
func Classify(err error) error {
	for _, sentinel := range []error{ErrAuthFailed, ErrConnFailed, ErrPermissionDenied, ErrNotFound, ErrInvalidConfig} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "AllAccessDisabled", "AccessControlListNotSupported":
		return ErrPermissionDenied
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "InvalidToken",
		"NotAuthorizedException", "TokenRefreshRequired":
		return ErrAuthFailed
	case "NoSuchBucket", "NoSuchKey", "NotFound", "ResourceNotFoundException":
		return ErrNotFound
	case "RequestTimeout", "SlowDown", "ServiceUnavailable", "InternalError":
		return ErrConnFailed
	case "InvalidBucketName", "AuthorizationHeaderMalformed", "PermanentRedirect":
		return ErrInvalidConfig
	}

	return nil
}

// Message returns the text a user should see for err: the service's own
// message when the error came from an AWS API, the error text otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Err.Error()
	}

	return err.Error()
}
