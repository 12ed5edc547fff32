package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersionString(t *testing.T) {
	t.Parallel()

	s := BuildVersionString("animctl")
	assert.Contains(t, s, "animctl\n")
	assert.Contains(t, s, unknownVersion)
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, s, "Revision:\t"+unknownRevision)
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "animctl/"+unknownRevision, UserAgent())
}
