package gpn

import (
	"errors"
	"fmt"
)

// MissingParameterError indicates a required call parameter was absent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

// NetworkError indicates the HTTP call itself failed before a response was
// received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling GPN API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError indicates the GPN API answered with a non-success status.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("GPN API error %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("GPN API error %d", e.Status)
}

// InvalidResponseError indicates the response body could not be parsed.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid GPN API response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// NotFoundError indicates the client has no addresses on record.
type NotFoundError struct {
	ClientID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no addresses found for client %d", e.ClientID)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsMissingParameter returns true if the error is a MissingParameterError.
func IsMissingParameter(err error) bool {
	var missing *MissingParameterError
	return errors.As(err, &missing)
}
