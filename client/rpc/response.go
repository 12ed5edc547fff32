package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrRPCError                  = errors.New("rpc error")
)

// Response is a JSON-RPC 2.0 reply. The client itself never decodes
// replies; DecodeResponse is for callers that want to.
type Response struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	Id      json.RawMessage `json:"id,omitempty"`
}

type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

func DecodeResponse(text string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return &resp, nil
}

// Err returns the error member wrapped with ErrRPCError, or nil.
func (r *Response) Err() error {
	if r.Error == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRPCError, r.Error)
}
