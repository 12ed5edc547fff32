package mock

import (
	"context"
	"sync"

	"github.com/gltf-insight/animctl/client"
	"github.com/gltf-insight/animctl/core/types"
)

// MockClient records every update it is asked to send and answers with
// Response or Err.
type MockClient struct {
	Response string
	Err      error

	mu        sync.Mutex
	Updates   []*types.UpdateParams
	PlainText [][]byte
}

var _ client.Client = (*MockClient)(nil)

func (m *MockClient) SendUpdate(_ context.Context, params *types.UpdateParams) (string, error) {
	m.mu.Lock()
	m.Updates = append(m.Updates, params)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockClient) UpdateJoints(ctx context.Context, transforms ...types.JointTransform) (string, error) {
	return m.SendUpdate(ctx, types.NewJointTransformsParams(transforms...))
}

func (m *MockClient) UpdateAdditiveJoints(ctx context.Context, transforms ...types.JointTransform) (string, error) {
	return m.SendUpdate(ctx, types.NewAdditiveJointTransformsParams(transforms...))
}

func (m *MockClient) UpdateMorphWeights(ctx context.Context, weights ...types.MorphWeight) (string, error) {
	return m.SendUpdate(ctx, types.NewMorphWeightsParams(weights...))
}

func (m *MockClient) PlainTextCall(_ context.Context, requestBody []byte) (string, error) {
	m.mu.Lock()
	m.PlainText = append(m.PlainText, requestBody)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// LastUpdate returns the params of the most recent SendUpdate, or nil.
func (m *MockClient) LastUpdate() *types.UpdateParams {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Updates) == 0 {
		return nil
	}
	return m.Updates[len(m.Updates)-1]
}
