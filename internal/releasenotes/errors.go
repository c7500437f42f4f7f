package releasenotes

import (
	"errors"
	"fmt"
)

// UsageError reports an invalid invocation, such as a missing version.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ProviderError reports that the changelog provider could not produce a
// changelog for Version. Err is the provider's error, unchanged.
type ProviderError struct {
	Version string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("fetching changelog for %s: %v", e.Version, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err is or wraps a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// IsProviderError reports whether err is or wraps a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
