package service

import (
	"strings"
	"testing"

	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResponse(t *testing.T) {
	t.Parallel()

	reply := `{"jsonrpc":"2.0","result":{"b":[1,2],"a":0.50},"id":0}`

	assert.Equal(t, reply, FormatResponse(reply, false))

	pretty := FormatResponse(reply, true)
	assert.JSONEq(t, reply, pretty)
	assert.Contains(t, pretty, "\n  \"jsonrpc\": \"2.0\"")
	assert.Less(t, strings.Index(pretty, `"b"`), strings.Index(pretty, `"a"`))
	assert.Contains(t, pretty, "0.50")

	assert.Equal(t, "not json", FormatResponse("not json", true))
	assert.Empty(t, FormatResponse("", true))
}

func TestCheckResponse(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckResponse(`{"jsonrpc":"2.0", "result": 0, "id": 0}`))

	err := CheckResponse(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"fail"}}`)
	require.ErrorIs(t, err, ErrServerError)
	require.ErrorIs(t, err, rpc.ErrRPCError)

	require.ErrorIs(t, CheckResponse("ok"), rpc.ErrFailedToUnmarshalResponse)
}
