/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupAppConfigDefaults(t *testing.T) {
	StdConfig = Config{}
	assert.NoError(t, SetupAppConfig())

	assert.Equal(t, 0, StdConfig.TopTalkers)
	assert.Equal(t, 0, StdConfig.LargeMessages)
	assert.Equal(t, "", StdConfig.Unit)
	assert.Equal(t, "", StdConfig.Pattern)
}

func TestSetupAppConfigEnvOverrides(t *testing.T) {
	StdConfig = Config{}
	t.Setenv("JS_INPUT", "/var/log/journal")
	t.Setenv("JS_TOP_TALKERS", "10")
	t.Setenv("JS_LARGE_MESSAGES", "5")
	t.Setenv("JS_UNIT", "ssh.service")
	t.Setenv("JS_PATTERN", "closed")
	t.Setenv("JS_DEBUG", "true")

	assert.NoError(t, SetupAppConfig())
	assert.Equal(t, "/var/log/journal", StdConfig.Input)
	assert.Equal(t, 10, StdConfig.TopTalkers)
	assert.Equal(t, 5, StdConfig.LargeMessages)
	assert.Equal(t, "ssh.service", StdConfig.Unit)
	assert.Equal(t, "closed", StdConfig.Pattern)
	assert.True(t, StdConfig.Debug)
}

func TestSetupAppConfigClampsNegativeCapacities(t *testing.T) {
	StdConfig = Config{}
	t.Setenv("JS_TOP_TALKERS", "-1")
	t.Setenv("JS_LARGE_MESSAGES", "-100")

	assert.NoError(t, SetupAppConfig())
	assert.Equal(t, 0, StdConfig.TopTalkers)
	assert.Equal(t, 0, StdConfig.LargeMessages)
}
