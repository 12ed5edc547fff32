package client

import (
	"context"

	"github.com/gltf-insight/animctl/core/types"
)

// Client defines the interface for an animation server client.
// Every method performs exactly one request and returns the raw reply text.
type Client interface {
	// SendUpdate sends a JSON-RPC "update" call carrying params.
	SendUpdate(ctx context.Context, params *types.UpdateParams) (string, error)

	UpdateJoints(ctx context.Context, transforms ...types.JointTransform) (string, error)
	UpdateAdditiveJoints(ctx context.Context, transforms ...types.JointTransform) (string, error)
	UpdateMorphWeights(ctx context.Context, weights ...types.MorphWeight) (string, error)

	// PlainTextCall posts an already encoded request body.
	PlainTextCall(ctx context.Context, requestBody []byte) (string, error)
}
