package awair

import (
	"errors"
	"fmt"
)

// Sentinel errors for Awair API operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, awair.ErrTransport) {
//	    // Network-level failure, API never responded
//	}
var (
	// ErrTransport indicates a network-level failure reaching the API
	// (DNS, connection, timeout).
	ErrTransport = errors.New("awair: transport failure")

	// ErrDecode indicates the response body could not be decoded:
	// malformed JSON or an unknown sensor kind.
	ErrDecode = errors.New("awair: decode failure")
)

// InvalidResponseError is returned when the API answers with a status
// other than 200 OK. The body is captured where readable but is never
// parsed as a payload.
//
// Check with errors.As:
//
//	var invalid *awair.InvalidResponseError
//	if errors.As(err, &invalid) {
//	    log.Error("bad status", "status", invalid.StatusCode)
//	}
type InvalidResponseError struct {
	StatusCode int
	Body       []byte
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("awair: invalid response: status %d", e.StatusCode)
}
