package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gltf-insight/animctl/client"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	Version      = "2.0"
	MethodUpdate = "update"

	DefaultEndpoint = "http://localhost:21264/v1"

	contentType = "application/json"
)

var ErrInvalidEndpoint = errors.New("invalid endpoint")

type Config struct {
	// Endpoint accepts http(s):// URLs, tcp://host:port/path (served over
	// plain HTTP) and unix:///path/to.sock. Empty means DefaultEndpoint.
	Endpoint string

	// Headers are added to every request. Content-Type is always
	// application/json and can not be overridden.
	Headers map[string]string

	// Timeout bounds a whole exchange. Zero disables it.
	Timeout time.Duration

	IdMode IdMode

	// Transport replaces the default non-pooling transport.
	Transport http.RoundTripper
}

type Client struct {
	endpoint string
	idMode   IdMode
	seqno    atomic.Uint64
	client   http.Client
	headers  map[string]string
	logger   zerolog.Logger
}

var _ client.Client = (*Client)(nil)

// Request is the JSON-RPC 2.0 envelope of an update call. Id is omitted
// when nil, which makes the call a notification.
type Request struct {
	Version string              `json:"jsonrpc"`
	Method  string              `json:"method"`
	Params  *types.UpdateParams `json:"params"`
	Id      any                 `json:"id,omitempty"`
}

func NewUpdateRequest(id any, params *types.UpdateParams) *Request {
	return &Request{
		Version: Version,
		Method:  MethodUpdate,
		Params:  params,
		Id:      id,
	}
}

// MarshalUpdateRequest validates params and encodes the envelope.
func MarshalUpdateRequest(id any, params *types.UpdateParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, &EncodingError{Err: err}
	}

	body, err := json.Marshal(NewUpdateRequest(id, params))
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	return body, nil
}

func NewClient(endpoint string, logger zerolog.Logger) (*Client, error) {
	return NewClientWithConfig(Config{Endpoint: endpoint}, logger)
}

func NewClientWithDefaultHeaders(endpoint string, logger zerolog.Logger, headers map[string]string) (*Client, error) {
	return NewClientWithConfig(Config{Endpoint: endpoint, Headers: headers}, logger)
}

func NewClientWithConfig(cfg Config, logger zerolog.Logger) (*Client, error) {
	idMode := cfg.IdMode
	if idMode == "" {
		idMode = IdModeNone
	}
	if err := idMode.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		endpoint: cfg.Endpoint,
		idMode:   idMode,
		headers:  cfg.Headers,
		logger:   logger,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}

	// No connection is shared between calls.
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
	}

	if strings.HasPrefix(c.endpoint, "unix://") {
		socketPath := strings.TrimPrefix(c.endpoint, "unix://")
		if socketPath == "" {
			return nil, fmt.Errorf("%w: %q: empty socket path", ErrInvalidEndpoint, cfg.Endpoint)
		}
		c.endpoint = "http://unix"
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		}
	} else if strings.HasPrefix(c.endpoint, "tcp://") {
		c.endpoint = "http://" + strings.TrimPrefix(c.endpoint, "tcp://")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q: expected an http(s), tcp or unix URL", ErrInvalidEndpoint, cfg.Endpoint)
	}

	c.client = http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
	if cfg.Transport != nil {
		c.client.Transport = cfg.Transport
	}

	return c, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) getNextId() any {
	switch c.idMode {
	case IdModeSeq:
		return c.seqno.Add(1)
	case IdModeUUID:
		return uuid.NewString()
	}
	return nil
}

func (c *Client) SendUpdate(ctx context.Context, params *types.UpdateParams) (string, error) {
	id := c.getNextId()
	requestBody, err := MarshalUpdateRequest(id, params)
	if err != nil {
		return "", err
	}

	c.logger.Debug().
		Str(logging.FieldRpcMethod, MethodUpdate).
		Interface(logging.FieldReqId, id).
		Str(logging.FieldUpdateKind, string(params.Kind())).
		Int(logging.FieldCount, params.Len()).
		Msg("Sending update")

	return c.PlainTextCall(ctx, requestBody)
}

func (c *Client) UpdateJoints(ctx context.Context, transforms ...types.JointTransform) (string, error) {
	return c.SendUpdate(ctx, types.NewJointTransformsParams(transforms...))
}

func (c *Client) UpdateAdditiveJoints(ctx context.Context, transforms ...types.JointTransform) (string, error) {
	return c.SendUpdate(ctx, types.NewAdditiveJointTransformsParams(transforms...))
}

func (c *Client) UpdateMorphWeights(ctx context.Context, weights ...types.MorphWeight) (string, error) {
	return c.SendUpdate(ctx, types.NewMorphWeightsParams(weights...))
}

// PlainTextCall posts requestBody once and returns the reply text. The
// reply is not inspected for a JSON-RPC error member.
func (c *Client) PlainTextCall(ctx context.Context, requestBody []byte) (string, error) {
	c.logger.Trace().RawJSON("request", requestBody).Str(logging.FieldUrl, c.endpoint).Send()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return "", &TransportError{Endpoint: c.endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Endpoint: c.endpoint, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Trace().
		Int(logging.FieldStatusCode, resp.StatusCode).
		Dur(logging.FieldDuration, time.Since(start)).
		Bytes("response", body).
		Send()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !utf8.Valid(body) {
		return "", &DecodingError{Body: body}
	}
	return string(body), nil
}
