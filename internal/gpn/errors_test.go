package gpn

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing parameter",
			err:  &MissingParameterError{Name: "client_id"},
			want: "missing required parameter: client_id",
		},
		{
			name: "network",
			err:  &NetworkError{Err: errors.New("connection refused")},
			want: "network error calling GPN API: connection refused",
		},
		{
			name: "api with body",
			err:  &APIError{Status: 500, Body: "oops"},
			want: "GPN API error 500: oops",
		},
		{
			name: "api without body",
			err:  &APIError{Status: 401},
			want: "GPN API error 401",
		},
		{
			name: "invalid response",
			err:  &InvalidResponseError{Err: errors.New("unexpected end of JSON input")},
			want: "invalid GPN API response: unexpected end of JSON input",
		},
		{
			name: "not found",
			err:  &NotFoundError{ClientID: 42},
			want: "no addresses found for client 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("error message = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := fmt.Errorf("lookup failed: %w", &NetworkError{Err: cause})

	var netErr *NetworkError
	if !errors.As(wrapped, &netErr) {
		t.Fatal("errors.As should find NetworkError through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the transport cause")
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrapped: %w", &NotFoundError{ClientID: 1})) {
		t.Error("IsNotFound should match wrapped NotFoundError")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound should not match unrelated errors")
	}
	if !IsMissingParameter(&MissingParameterError{Name: "credentials"}) {
		t.Error("IsMissingParameter should match MissingParameterError")
	}
	if IsMissingParameter(&NotFoundError{ClientID: 1}) {
		t.Error("IsMissingParameter should not match NotFoundError")
	}
}
