package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfoDefaults(t *testing.T) {
	assert.Equal(t, "unknown", RespGitSHA1())
	assert.Equal(t, "unknown", RespGitDirty())
	assert.Equal(t, "unknownunknownunknownunknown", RespBuildIdRaw())
}
