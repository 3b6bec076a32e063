package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, 2, c.CheckinRewardPoints)
	assert.Equal(t, 8, c.CheckinUTCOffsetHours)
	assert.Equal(t, 100, c.ReferralRewardPoints)
	assert.Equal(t, "golfin", c.DBName)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.AuthEnabled)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := AppConfig{
		AppPort:               "9000",
		CheckinRewardPoints:   5,
		CheckinUTCOffsetHours: 9,
	}
	applyDefaults(&c)

	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, 5, c.CheckinRewardPoints)
	assert.Equal(t, 9, c.CheckinUTCOffsetHours)
}
