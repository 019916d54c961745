package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog", "-a", ":8080", "-d", "postgres://flag:flag@db/flagdb", "-k"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "postgres://flag:flag@db/flagdb", c.DatabaseDSN)
	assert.True(t, c.DatabaseSkipTLSVerify)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":3000", c.EndpointAddr)
	assert.False(t, c.DatabaseSkipTLSVerify)
}
