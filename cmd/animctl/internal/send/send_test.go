package send

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gltf-insight/animctl/client/mock"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pose.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
joint_transforms:
  - joint_id: 1
    rotation_angle: [0, 0, 45]
`), 0o644))

	mockClient := &mock.MockClient{Response: `{"jsonrpc":"2.0","result":0,"id":0}`}
	common.SetRpcClient(mockClient)
	t.Cleanup(func() { common.SetRpcClient(nil) })

	var out bytes.Buffer
	cmd := GetCommand()
	cmd.SetArgs([]string{"--pretty", path})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, types.NewJointTransformsParams(types.NewJointRotation(1, 0, 0, 45)), mockClient.LastUpdate())
	assert.Contains(t, out.String(), "\"result\": 0")
}

func TestSendMissingFile(t *testing.T) {
	mockClient := &mock.MockClient{Response: "ok"}
	common.SetRpcClient(mockClient)
	t.Cleanup(func() { common.SetRpcClient(nil) })

	cmd := GetCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
	assert.Empty(t, mockClient.Updates)
}
