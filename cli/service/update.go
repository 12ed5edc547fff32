package service

import (
	"context"

	"github.com/gltf-insight/animctl/common/logging"
	"github.com/gltf-insight/animctl/core/types"
)

// UpdateJoints sends joint transforms, either replacing the current pose or
// applied on top of it.
func (s *Service) UpdateJoints(ctx context.Context, transforms []types.JointTransform, additive bool) (string, error) {
	params := types.NewJointTransformsParams(transforms...)
	if additive {
		params = types.NewAdditiveJointTransformsParams(transforms...)
	}
	return s.SendParams(ctx, params)
}

func (s *Service) UpdateMorphWeights(ctx context.Context, weights []types.MorphWeight) (string, error) {
	return s.SendParams(ctx, types.NewMorphWeightsParams(weights...))
}

func (s *Service) SendParams(ctx context.Context, params *types.UpdateParams) (string, error) {
	reply, err := s.client.SendUpdate(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to send update")
		return "", err
	}

	s.logger.Debug().
		Str(logging.FieldUpdateKind, string(params.Kind())).
		Int(logging.FieldCount, params.Len()).
		Msg("Update sent")
	return reply, nil
}
