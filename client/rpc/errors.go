package rpc

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToMarshalRequest = errors.New("failed to marshal request")
	ErrFailedToSendRequest    = errors.New("failed to send request")
	ErrUnexpectedStatusCode   = errors.New("unexpected status code")
	ErrFailedToDecodeResponse = errors.New("failed to decode response")
)

// EncodingError is returned when the params can not be turned into a valid
// request body. Nothing is sent in that case.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFailedToMarshalRequest, e.Err)
}

func (e *EncodingError) Unwrap() []error {
	return []error{ErrFailedToMarshalRequest, e.Err}
}

// TransportError covers everything that went wrong below HTTP: DNS,
// refused or reset connections, timeouts, cancellation and body reads.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s to %s: %s", ErrFailedToSendRequest, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrFailedToSendRequest, e.Err}
}

// HTTPStatusError is returned for non-2xx replies. Body holds whatever the
// server sent back.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: %d: %s", ErrUnexpectedStatusCode, e.StatusCode, e.Body)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrUnexpectedStatusCode
}

// DecodingError is returned when the reply body is not valid UTF-8 text.
type DecodingError struct {
	Body []byte
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: body of %d bytes is not valid UTF-8", ErrFailedToDecodeResponse, len(e.Body))
}

func (e *DecodingError) Unwrap() error {
	return ErrFailedToDecodeResponse
}
