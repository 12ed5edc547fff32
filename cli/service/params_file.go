package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/gltf-insight/animctl/core/types"
	"gopkg.in/yaml.v3"
)

var ErrInvalidParamsFile = errors.New("invalid params file")

type ParamsFormat int

const (
	FormatJSON ParamsFormat = iota
	FormatYAML
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) ParamsFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadParams reads update params from r. The document is either the params
// object itself or a whole "update" request envelope.
func LoadParams(r io.Reader, format ParamsFormat) (*types.UpdateParams, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParamsFile, err)
	}

	if format == FormatYAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParamsFile, err)
		}
	}

	paramsData, err := unwrapEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParamsFile, err)
	}

	dec := json.NewDecoder(bytes.NewReader(paramsData))
	dec.DisallowUnknownFields()

	var params types.UpdateParams
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParamsFile, err)
	}
	return &params, nil
}

// LoadParamsFile reads params from path, or from stdin when path is "-".
func (s *Service) LoadParamsFile(path string) (*types.UpdateParams, error) {
	if path == "-" {
		return LoadParams(os.Stdin, FormatJSON)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open params file: %w", err)
	}
	defer f.Close()

	params, err := LoadParams(f, FormatFromPath(path))
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldParamsFile, path).Msg("Failed to load params")
		return nil, err
	}
	return params, nil
}

func (s *Service) SendParamsFile(ctx context.Context, path string) (string, error) {
	params, err := s.LoadParamsFile(path)
	if err != nil {
		return "", err
	}
	return s.SendParams(ctx, params)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func unwrapEnvelope(data []byte) ([]byte, error) {
	var envelope struct {
		Version *string         `json:"jsonrpc"`
		Method  *string         `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	if envelope.Version == nil && envelope.Method == nil {
		return data, nil
	}
	if envelope.Version != nil && *envelope.Version != rpc.Version {
		return nil, fmt.Errorf("unsupported jsonrpc version %q", *envelope.Version)
	}
	if envelope.Method != nil && *envelope.Method != rpc.MethodUpdate {
		return nil, fmt.Errorf("unsupported method %q", *envelope.Method)
	}
	if envelope.Params == nil {
		return nil, errors.New("request has no params")
	}
	return envelope.Params, nil
}
