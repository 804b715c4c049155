package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SCALEDEX_ADDR", "")
	t.Setenv("SCALEDEX_ALLOWED_ORIGINS", "")
	t.Setenv("SCALEDEX_MODES_PATH", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetAddr())
	assert.Equal([]string{"*"}, GetAllowedOrigins())
	assert.Equal("", GetModesPath())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SCALEDEX_ADDR", "127.0.0.1:9000")
	t.Setenv("SCALEDEX_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SCALEDEX_MODES_PATH", "/etc/scaledex/modes.yaml")

	assert := assert.New(t)
	assert.Equal("127.0.0.1:9000", GetAddr())
	assert.Equal([]string{"http://a.test", "http://b.test"}, GetAllowedOrigins())
	assert.Equal("/etc/scaledex/modes.yaml", GetModesPath())
}
