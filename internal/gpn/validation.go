package gpn

import "fmt"

// MaxFilterLength caps type and field filter inputs
const MaxFilterLength = 100

// ValidateClientID validates a GPN client identifier.
// Client IDs are positive integers assigned by the GPN platform.
func ValidateClientID(id int64) error {
	if id == 0 {
		return fmt.Errorf("client_id is required")
	}
	if id < 0 {
		return fmt.Errorf("invalid client_id %d: must be a positive integer", id)
	}
	return nil
}

// ValidateFilter validates an optional type or field filter string.
func ValidateFilter(name, value string) error {
	if len(value) > MaxFilterLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", name, MaxFilterLength)
	}
	return nil
}

// MaxRenderInputLength caps HTML input to the render tool
const MaxRenderInputLength = 100_000

// ValidateRenderInput validates HTML passed to the render tool.
func ValidateRenderInput(html string) error {
	if len(html) > MaxRenderInputLength {
		return fmt.Errorf("html exceeds maximum length of %d bytes", MaxRenderInputLength)
	}
	return nil
}
