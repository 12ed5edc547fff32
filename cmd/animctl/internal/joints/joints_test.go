package joints

import (
	"bytes"
	"testing"

	"github.com/gltf-insight/animctl/client/mock"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJoints(t *testing.T, args ...string) (*mock.MockClient, string, error) {
	t.Helper()

	mockClient := &mock.MockClient{Response: `{"jsonrpc":"2.0","result":0,"id":0}`}
	common.SetRpcClient(mockClient)
	common.Quiet = true
	t.Cleanup(func() {
		common.SetRpcClient(nil)
		common.Quiet = false
	})

	var out bytes.Buffer
	cmd := GetCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return mockClient, out.String(), err
}

func TestJointsRotationAngle(t *testing.T) {
	mockClient, out, err := runJoints(t, "1:0,0,45", "2:90,0,0")
	require.NoError(t, err)
	assert.Equal(t, "{\"jsonrpc\":\"2.0\",\"result\":0,\"id\":0}\n", out)

	assert.Equal(t, types.NewJointTransformsParams(
		types.NewJointRotation(1, 0, 0, 45),
		types.NewJointRotation(2, 90, 0, 0),
	), mockClient.LastUpdate())
}

func TestJointsAdditiveTranslation(t *testing.T) {
	mockClient, _, err := runJoints(t, "--additive", "--component", "translation", "3:0,0.1,0")
	require.NoError(t, err)

	assert.Equal(t, types.NewAdditiveJointTransformsParams(
		types.NewJointTranslation(3, 0, 0.1, 0),
	), mockClient.LastUpdate())
}

func TestJointsQuaternion(t *testing.T) {
	mockClient, _, err := runJoints(t, "--component", "rotation", "0:0,0,0,1")
	require.NoError(t, err)

	assert.Equal(t, types.NewJointTransformsParams(
		types.NewJointQuatRotation(0, 0, 0, 0, 1),
	), mockClient.LastUpdate())
}

func TestJointsInvalidInput(t *testing.T) {
	mockClient, _, err := runJoints(t, "1:0,0")
	require.ErrorIs(t, err, types.ErrInvalidShorthand)
	assert.Empty(t, mockClient.Updates)

	mockClient, _, err = runJoints(t, "--component", "skew", "1:0,0,1")
	require.Error(t, err)
	assert.Empty(t, mockClient.Updates)

	_, _, err = runJoints(t)
	require.Error(t, err)
}
