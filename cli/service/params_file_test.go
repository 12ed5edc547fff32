package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gltf-insight/animctl/client/mock"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParamsJSON(t *testing.T) {
	t.Parallel()

	params, err := LoadParams(strings.NewReader(
		`{"joint_transforms":[{"joint_id":1,"rotation_angle":[0.0,0.0,45.0]}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, types.NewJointTransformsParams(types.NewJointRotation(1, 0, 0, 45)), params)
}

func TestLoadParamsEnvelope(t *testing.T) {
	t.Parallel()

	params, err := LoadParams(strings.NewReader(
		`{"jsonrpc":"2.0","method":"update","params":{"morph_weights":[{"target_id":0,"weight":0.5}]}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, types.NewMorphWeightsParams(types.NewMorphWeight(0, 0.5)), params)
}

func TestLoadParamsYAML(t *testing.T) {
	t.Parallel()

	doc := `
additive_joint_transforms:
  - joint_id: 2
    translation: [0, 0.5, 0]
  - joint_id: 3
    rotation: [0, 0, 0, 1]
`
	params, err := LoadParams(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, types.NewAdditiveJointTransformsParams(
		types.NewJointTranslation(2, 0, 0.5, 0),
		types.NewJointQuatRotation(3, 0, 0, 0, 1),
	), params)
}

func TestLoadParamsErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		doc    string
		format ParamsFormat
	}{
		{"not json", `joint_transforms`, FormatJSON},
		{"unknown field", `{"joint_transform":[]}`, FormatJSON},
		{"unknown element field", `{"morph_weights":[{"target_id":0,"weight":1,"extra":1}]}`, FormatJSON},
		{"negative id", `{"morph_weights":[{"target_id":-1,"weight":1}]}`, FormatJSON},
		{"short vector", `{"joint_transforms":[{"joint_id":1,"rotation_angle":[0,0]}]}`, FormatJSON},
		{"wrong method", `{"jsonrpc":"2.0","method":"load","params":{}}`, FormatJSON},
		{"wrong version", `{"jsonrpc":"1.0","method":"update","params":{}}`, FormatJSON},
		{"missing params", `{"jsonrpc":"2.0","method":"update"}`, FormatJSON},
		{"bad yaml", "morph_weights: [", FormatYAML},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadParams(strings.NewReader(c.doc), c.format)
			require.ErrorIs(t, err, ErrInvalidParamsFile)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatYAML, FormatFromPath("pose.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("POSE.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("pose.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("pose"))
}

func TestSendParamsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "morph.yml")
	require.NoError(t, os.WriteFile(path, []byte("morph_weights:\n  - {target_id: 1, weight: 0.25}\n"), 0o600))

	mockClient := &mock.MockClient{Response: "ok"}
	service := NewService(mockClient)

	reply, err := service.SendParamsFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, types.NewMorphWeightsParams(types.NewMorphWeight(1, 0.25)), mockClient.LastUpdate())

	_, err = service.SendParamsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Len(t, mockClient.Updates, 1)
}
